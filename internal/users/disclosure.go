package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

const dateLayout = "2006-01-02"

// CanViewRestricted reports whether viewer may see the date of birth and address
// of the profile stored under profileEmail. Only the email the token proved
// counts; an identity re-resolved from the path does not.
func CanViewRestricted(profileEmail string, viewer auth.Identity) bool {
	return viewer.Authenticated() && auth.SameEmail(viewer.TokenEmail, profileEmail)
}

// profileView renders u for viewer. Restricted keys are absent, not null, when
// the viewer is not the owner.
func profileView(u User, viewer auth.Identity) fiber.Map {
	view := fiber.Map{
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
	}
	if CanViewRestricted(u.Email, viewer) {
		var dob *string
		if u.DOB != nil {
			s := u.DOB.Format(dateLayout)
			dob = &s
		}
		view["dob"] = dob
		view["address"] = u.Address
	}
	return view
}
