package tui

import (
	"fmt"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/models"
)

// sessionHeader describes s for the console header. The credential expiry
// is shown only when the credential is a JWT; it is never verified here.
func sessionHeader(s models.Session, now time.Time) string {
	if !s.Authenticated() {
		return "Not signed in"
	}

	line := "Signed in as " + s.Email
	claims, err := utils.PeekIdentityClaims(s.IDToken)
	if err != nil || claims.ExpiresAt == nil {
		return line
	}

	left := claims.ExpiresAt.Sub(now).Truncate(time.Second)
	if left <= 0 {
		return line + fmt.Sprintf(" │ credential expired %s ago, renewed on next request", -left)
	}
	return line + fmt.Sprintf(" │ credential expires in %s", left)
}
