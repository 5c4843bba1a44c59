package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_id\ttarget_id\tquery_len\ttarget_len\tcompact_diagonal\tdiagonal\tdiagonal_len\tmode\tscore\tstart\tend\tglobal_score\tp_value\tcoverage\theader_sim"
