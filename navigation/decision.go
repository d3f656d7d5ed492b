package navigation

import (
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-webview-auth/authresult"
)

// Action tells the host what to do with the navigation it reported.
type Action int

const (
	// ActionContinue lets the embedded browser load the URL unmodified.
	ActionContinue Action = iota + 1
	// ActionRedirect cancels the navigation and loads Decision.Request instead.
	ActionRedirect
	// ActionTerminate cancels the navigation and ends the session with
	// Decision.Result.
	ActionTerminate
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionRedirect:
		return "redirect"
	case ActionTerminate:
		return "terminate"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Request is a navigation the host must issue in place of the original one.
// Nothing else from the original request is carried over.
type Request struct {
	URL    string
	Header http.Header
}

// Decision is the evaluator's verdict on one candidate URL.
type Decision struct {
	Action  Action
	Rule    Rule
	Request *Request
	Result  authresult.AuthorizationResult
}

func continueDecision(rule Rule) Decision {
	return Decision{Action: ActionContinue, Rule: rule}
}

func redirectDecision(rule Rule, req *Request) Decision {
	return Decision{Action: ActionRedirect, Rule: rule, Request: req}
}

func terminateDecision(rule Rule, result authresult.AuthorizationResult) Decision {
	return Decision{Action: ActionTerminate, Rule: rule, Result: result}
}

// Allowed reports whether the host should let the original navigation proceed.
func (d Decision) Allowed() bool {
	return d.Action == ActionContinue
}
