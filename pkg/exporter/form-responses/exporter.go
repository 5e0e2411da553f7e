package formresponses

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// ResponseExporter writes parsed responses as wide csv, long csv or a json document.
// Call Finish once all responses are written.
type ResponseExporter struct {
	parser    *ResponseParser
	writer    io.Writer
	csvWriter *csv.Writer
	format    string
	counter   int
}

func NewResponseExporter(parser *ResponseParser, writer io.Writer, format string) (*ResponseExporter, error) {
	if parser == nil {
		return nil, errors.New("parser not initialized")
	}
	if writer == nil {
		return nil, errors.New("writer not initialized")
	}

	re := &ResponseExporter{
		parser: parser,
		writer: writer,
		format: format,
	}
	if err := re.init(); err != nil {
		return nil, err
	}
	return re, nil
}

// ContentType is the mime type of the produced output.
func ContentType(format string) string {
	if format == FORMAT_JSON {
		return "application/json"
	}
	return "text/csv"
}

// FileExtension returns the extension with leading dot for format.
func FileExtension(format string) string {
	if format == FORMAT_JSON {
		return ".json"
	}
	return ".csv"
}

func (re *ResponseExporter) init() error {
	cols := re.parser.Columns()
	switch re.format {
	case FORMAT_WIDE:
		re.csvWriter = csv.NewWriter(re.writer)
		record := append([]string{}, cols.FixedColumns...)
		record = append(record, cols.ResponseColumns...)
		return re.csvWriter.Write(record)
	case FORMAT_LONG:
		re.csvWriter = csv.NewWriter(re.writer)
		record := append([]string{}, cols.FixedColumns...)
		record = append(record, "responseSlot", "value")
		return re.csvWriter.Write(record)
	case FORMAT_JSON:
		_, err := re.writer.Write([]byte(`{"responses":[`))
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, re.format)
}

func (re *ResponseExporter) WriteResponse(rawResp *types.Response) error {
	parsedResp, err := re.parser.ParseResponse(rawResp)
	if err != nil {
		return err
	}

	switch re.format {
	case FORMAT_WIDE:
		if err := re.csvWriter.Write(re.parser.ResponseToStrList(parsedResp)); err != nil {
			return err
		}
	case FORMAT_LONG:
		for _, record := range re.parser.ResponseToLongFormat(parsedResp) {
			if err := re.csvWriter.Write(record); err != nil {
				return err
			}
		}
	case FORMAT_JSON:
		rV, err := json.Marshal(re.parser.ResponseToFlatObj(parsedResp))
		if err != nil {
			return err
		}
		if re.counter > 0 {
			if _, err := re.writer.Write([]byte(",")); err != nil {
				return err
			}
		}
		if _, err := re.writer.Write(rV); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, re.format)
	}

	re.counter += 1
	return nil
}

// Count is the number of responses written so far.
func (re *ResponseExporter) Count() int {
	return re.counter
}

func (re *ResponseExporter) Finish() error {
	switch re.format {
	case FORMAT_WIDE, FORMAT_LONG:
		re.csvWriter.Flush()
		return re.csvWriter.Error()
	case FORMAT_JSON:
		_, err := re.writer.Write([]byte("]}"))
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, re.format)
}
