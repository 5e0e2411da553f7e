package formresponses

import (
	"log/slog"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

// ResponseParser flattens responses of one form into columns derived from the form's
// current questions. Answers to questions that no longer exist are dropped.
type ResponseParser struct {
	form              types.Form
	columns           ColumnNames
	questionOptionSep string
}

func NewResponseParser(form types.Form, questionOptionSep string) *ResponseParser {
	if questionOptionSep == "" {
		questionOptionSep = DEFAULT_QUESTION_OPTION_SEP
	}
	rp := &ResponseParser{
		form:              form,
		questionOptionSep: questionOptionSep,
	}
	rp.initColumnNames()
	return rp
}

func (rp *ResponseParser) initColumnNames() {
	respCols := []string{}
	for _, q := range rp.form.Questions {
		handler, ok := questionTypeHandlers[q.Type()]
		if !ok {
			slog.Warn("no export handler for question type", slog.Int64("questionID", q.ID), slog.String("type", string(q.Type())))
			continue
		}
		respCols = append(respCols, handler.GetResponseColumnNames(q, rp.questionOptionSep)...)
	}

	rp.columns = ColumnNames{
		FixedColumns: []string{
			"ID",
			"submitted",
			"userAgent",
		},
		ResponseColumns: respCols,
	}
}

func (rp *ResponseParser) Columns() ColumnNames {
	return rp.columns
}

func (rp *ResponseParser) ParseResponse(rawResp *types.Response) (ParsedResponse, error) {
	parsed := ParsedResponse{
		ID:          rawResp.ID.Hex(),
		SubmittedAt: rawResp.SubmittedAt.Unix(),
		UserAgent:   rawResp.UserAgent,
		Responses:   map[string]interface{}{},
	}

	for _, q := range rp.form.Questions {
		handler, ok := questionTypeHandlers[q.Type()]
		if !ok {
			continue
		}
		answer := rawResp.Answers[types.AnswerKey(q.ID)]
		for k, v := range handler.ParseResponse(q, answer, rp.questionOptionSep) {
			if _, hasKey := parsed.Responses[k]; hasKey {
				slog.Error("duplicate response column", slog.String("key", k))
				continue
			}
			parsed.Responses[k] = v
		}
	}
	return parsed, nil
}

func (rp *ResponseParser) ResponseToFlatObj(parsedResponse ParsedResponse) map[string]interface{} {
	result := map[string]interface{}{
		rp.columns.FixedColumns[0]: parsedResponse.ID,
		rp.columns.FixedColumns[1]: parsedResponse.SubmittedAt,
		rp.columns.FixedColumns[2]: parsedResponse.UserAgent,
	}
	for _, colName := range rp.columns.ResponseColumns {
		r, ok := parsedResponse.Responses[colName]
		if !ok {
			result[colName] = ""
			continue
		}
		result[colName] = r
	}
	return result
}

func (rp *ResponseParser) ResponseToStrList(parsedResponse ParsedResponse) []string {
	result := rp.ResponseToFlatObj(parsedResponse)

	out := make([]string, 0, len(rp.columns.FixedColumns)+len(rp.columns.ResponseColumns))
	for _, colName := range rp.columns.FixedColumns {
		out = append(out, valueToStr(result[colName]))
	}
	for _, colName := range rp.columns.ResponseColumns {
		out = append(out, valueToStr(result[colName]))
	}
	return out
}

func (rp *ResponseParser) ResponseToLongFormat(parsedResponse ParsedResponse) [][]string {
	result := rp.ResponseToFlatObj(parsedResponse)

	fixedValues := []string{}
	for _, colName := range rp.columns.FixedColumns {
		fixedValues = append(fixedValues, valueToStr(result[colName]))
	}

	out := [][]string{}
	for _, colName := range rp.columns.ResponseColumns {
		line := append([]string{}, fixedValues...)
		line = append(line, colName, valueToStr(result[colName]))
		out = append(out, line)
	}
	return out
}
