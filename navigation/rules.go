package navigation

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-webview-auth/authresult"
	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
)

// Rule identifies which classification rule matched a candidate URL.
type Rule int

const (
	// RuleMalformed matches candidates that are empty, or that do not parse
	// and match none of the prefix rules.
	RuleMalformed Rule = iota + 1
	RuleExternalBrowser
	RuleRedirectURI
	RuleDeviceChallenge
	RuleProtocolGuard
	RuleDefault
)

var ruleNames = map[Rule]string{
	RuleMalformed:       "malformed",
	RuleExternalBrowser: "external_browser",
	RuleRedirectURI:     "redirect_uri",
	RuleDeviceChallenge: "device_challenge",
	RuleProtocolGuard:   "protocol_guard",
	RuleDefault:         "default",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Classification is a candidate URL and the rule it matched. URL is nil when
// the candidate did not parse.
type Classification struct {
	Rule Rule
	Raw  string
	URL  *url.URL
	Base string
}

// rule pairs a predicate with the decision it produces. Prefix rules look at
// the raw base only; rules with needsURL set are reached only for candidates
// that parsed.
type rule struct {
	kind     Rule
	needsURL bool
	matches  func(e *Evaluator, base string, u *url.URL) bool
	decide   func(e *Evaluator, ctx context.Context, c Classification) Decision
}

// rules is evaluated top to bottom and the first match wins. The order is an
// invariant: the external browser, redirect URI and challenge prefixes are all
// non-HTTPS and would otherwise be rejected by the protocol guard.
var rules = []rule{
	{
		kind: RuleExternalBrowser,
		matches: func(_ *Evaluator, base string, _ *url.URL) bool {
			return hasPrefixFold(base, BrowserExtPrefix)
		},
		decide: (*Evaluator).openExternally,
	},
	{
		kind: RuleRedirectURI,
		matches: func(e *Evaluator, base string, _ *url.URL) bool {
			return hasPrefixFold(base, e.redirectURI) || hasPrefixFold(base, BrowserExtInstallPrefix)
		},
		decide: func(_ *Evaluator, _ context.Context, c Classification) Decision {
			return terminateDecision(RuleRedirectURI, authresult.NewSuccess(c.Base))
		},
	},
	{
		kind: RuleDeviceChallenge,
		matches: func(_ *Evaluator, base string, _ *url.URL) bool {
			return hasPrefixFold(base, DeviceAuthChallengeRedirect)
		},
		decide: (*Evaluator).answerChallenge,
	},
	{
		kind:     RuleProtocolGuard,
		needsURL: true,
		matches: func(_ *Evaluator, base string, u *url.URL) bool {
			return !equalFold(base, AboutBlankURL) && !equalFold(u.Scheme, httpsScheme)
		},
		decide: func(_ *Evaluator, _ context.Context, _ Classification) Decision {
			return terminateDecision(RuleProtocolGuard, authresult.NewError(authresult.StatusErrorHTTP,
				authresult.ErrorNonHTTPSRedirect, authresult.ErrorNonHTTPSRedirectMessage))
		},
	},
	{
		kind:     RuleDefault,
		needsURL: true,
		matches: func(_ *Evaluator, _ string, _ *url.URL) bool {
			return true
		},
		decide: func(_ *Evaluator, _ context.Context, _ Classification) Decision {
			return continueDecision(RuleDefault)
		},
	},
}

func (e *Evaluator) openExternally(_ context.Context, c Classification) Decision {
	target := WithHTTPSScheme(c.Raw)
	e.opener.OpenExternally(target)
	return terminateDecision(RuleExternalBrowser, authresult.NewUserCancel())
}

func (e *Evaluator) answerChallenge(ctx context.Context, c Classification) Decision {
	req, err := e.challenges.Handle(ctx, challengeURL(c))
	if err != nil {
		return ChallengeFailure(err)
	}
	return redirectDecision(RuleDeviceChallenge, req)
}

// ChallengeFailure converts a device challenge error into the terminating
// decision: malformed challenges and responder failures get distinct codes.
func ChallengeFailure(err error) Decision {
	code, message := authresult.ErrorChallengeFailed, authresult.ErrorChallengeFailedMessage
	if apperrors.Is(err, apperrors.ErrMalformedChallenge) {
		code, message = authresult.ErrorChallengeMalformed, authresult.ErrorChallengeMalformedMessage
	}
	return terminateDecision(RuleDeviceChallenge, authresult.NewError(authresult.StatusErrorHTTP, code, message))
}

func malformedDecision() Decision {
	return terminateDecision(RuleMalformed, authresult.NewError(authresult.StatusProtocolError,
		authresult.ErrorMalformedRedirect, authresult.ErrorMalformedRedirectMessage))
}
