package auth

import "net/http"

type Privilege int

const (
	Authenticated Privilege = iota
	Elevated
)

// Policy maps an HTTP method to the privilege it needs.
type Policy func(method string) Privilege

func safeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// CollectionPolicy lets any authenticated user read; creating needs staff.
func CollectionPolicy(method string) Privilege {
	if method == http.MethodPost {
		return Elevated
	}
	return Authenticated
}

// ItemPolicy lets any authenticated user read; writes need staff.
func ItemPolicy(method string) Privilege {
	if safeMethod(method) {
		return Authenticated
	}
	return Elevated
}

func AlwaysElevated(string) Privilege { return Elevated }

func AlwaysAuthenticated(string) Privilege { return Authenticated }

// RequirePrivilege answers 401 without an identity and 403 when the policy
// wants staff and the caller is not.
func RequirePrivilege(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
				return
			}
			if policy(r.Method) == Elevated && !id.IsStaff {
				writeJSONError(w, http.StatusForbidden, "You do not have permission to perform this action.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
