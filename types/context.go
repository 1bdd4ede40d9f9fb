package types

type ctxKey string

// TracingID is the context key of the id used to correlate logs of one run
const TracingID ctxKey = "tracing_id"
