package formresponses

const (
	FORMAT_WIDE = "wide"
	FORMAT_LONG = "long"
	FORMAT_JSON = "json"

	DEFAULT_QUESTION_OPTION_SEP = "."
)

var Formats = []string{FORMAT_WIDE, FORMAT_LONG, FORMAT_JSON}

type ParsedResponse struct {
	ID          string
	SubmittedAt int64
	UserAgent   string
	Responses   map[string]interface{}
}

type ColumnNames struct {
	FixedColumns    []string
	ResponseColumns []string
}
