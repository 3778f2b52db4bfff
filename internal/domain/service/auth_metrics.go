package service

// Outcomes recorded by AuthMetrics.
const (
	OutcomeSuccess            = "success"
	OutcomeEmailExists        = "email_exists"
	OutcomeUsernameExists     = "username_exists"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeMissingToken       = "missing"
	OutcomeInvalidToken       = "invalid"
	OutcomeExpiredToken       = "expired"
	OutcomeConfigError        = "config_error"
	OutcomeError              = "error"
)

// AuthMetrics records authentication outcomes, including the internal reasons
// that are hidden from callers.
type AuthMetrics interface {
	ObserveRegistration(outcome string)
	ObserveLogin(outcome string)
	ObserveAuthentication(outcome string)
}

// NoopAuthMetrics discards every observation.
type NoopAuthMetrics struct{}

func (NoopAuthMetrics) ObserveRegistration(string)   {}
func (NoopAuthMetrics) ObserveLogin(string)          {}
func (NoopAuthMetrics) ObserveAuthentication(string) {}
