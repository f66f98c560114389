package core

import "fmt"

// Diagnostic is one finding from a generation run. Every diagnostic carries
// the model id, the column name when the finding is column-scoped, and a
// human-readable reason, so a caller can report all problems from a single
// pass.
type Diagnostic struct {
	ModelID  string   `json:"model_id"`
	Column   string   `json:"column,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	loc := d.ModelID
	if d.Column != "" {
		loc += "." + d.Column
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, loc, d.Message)
}

// Errorf builds an error-severity diagnostic.
func Errorf(modelID, column, format string, args ...any) Diagnostic {
	return Diagnostic{ModelID: modelID, Column: column, Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(modelID, column, format string, args ...any) Diagnostic {
	return Diagnostic{ModelID: modelID, Column: column, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Infof builds an info-severity diagnostic.
func Infof(modelID, column, format string, args ...any) Diagnostic {
	return Diagnostic{ModelID: modelID, Column: column, Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)}
}
