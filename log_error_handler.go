package instruction

import "log"

// LogErrorHandler writes every error thrown during the command process to a logger.
type LogErrorHandler struct {
	logger *log.Logger
}

// NewLogErrorHandler creates a LogErrorHandler writing to logger, or to the standard logger when nil.
func NewLogErrorHandler(logger *log.Logger) *LogErrorHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &LogErrorHandler{logger: logger}
}

func (hdl *LogErrorHandler) Handle(cmd Command, err error) {
	identifier := Unidentified
	if cmd != nil {
		identifier = cmd.Identifier()
	}
	hdl.logger.Printf("%s: %v", identifier, err)
}
