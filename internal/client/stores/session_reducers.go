package stores

import (
	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/state"
)

func authenticated(u *models.User) models.Session {
	return models.Session{Status: models.SessionAuthenticated, User: u, ExpiresAt: tokenExpiry(u)}
}

func unauthenticated(msg string) models.Session {
	return models.Session{Status: models.SessionUnauthenticated, Error: msg}
}

func checking(cur models.Session) models.Session {
	cur.Status = models.SessionChecking
	cur.Error = ""
	return cur
}

// reduceCheckSession: an Ok(nil) result means no usable stored session.
func reduceCheckSession(cur models.Session, r state.Result[*models.User]) models.Session {
	switch r.Phase() {
	case state.PhasePending:
		return checking(cur)
	case state.PhaseOk:
		if u, _ := r.Value(); u != nil {
			return authenticated(u)
		}
		return unauthenticated("")
	default:
		return unauthenticated("")
	}
}

func reduceLogin(cur models.Session, r state.Result[*models.User]) models.Session {
	switch r.Phase() {
	case state.PhasePending:
		return checking(cur)
	case state.PhaseOk:
		u, _ := r.Value()
		return authenticated(u)
	default:
		return unauthenticated(errorText(r.Error(), "Login failed"))
	}
}

func reduceRegister(cur models.Session, r state.Result[*models.RegisteredUser]) models.Session {
	switch r.Phase() {
	case state.PhasePending:
		return checking(cur)
	case state.PhaseOk:
		return unauthenticated("")
	default:
		return unauthenticated(errorText(r.Error(), "Registration failed"))
	}
}

func reduceLogout(cur models.Session, r state.Result[struct{}]) models.Session {
	switch r.Phase() {
	case state.PhasePending:
		return checking(cur)
	default:
		return unauthenticated("")
	}
}

func errorText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
