package ports

//go:generate mockgen -source=output.go -destination=mocks/output_mock.go -package=mocks

// LineStyle tells a sink how a report line should be presented
type LineStyle int

const (
	StylePlain LineStyle = iota
	StyleHeader
	StyleError
	StyleWarning
	StyleSuccess
)

// OutputSink receives the validator's report one line at a time
type OutputSink interface {
	Clear() error
	AppendLine(style LineStyle, line string) error
}
