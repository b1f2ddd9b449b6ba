package medicineentity

import (
	"regexp"

	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

var expirationDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Input struct {
	UserSub        string
	Name           string
	Type           string
	Quantity       int
	ExpirationDate string
}

// Validate returns an error whose message is suitable to show the user.
// It must pass before anything is written to the record store.
func (i Input) Validate() error {
	if i.Name == "" {
		return mark.Message(InvalidInputMark, "Please enter the medicine name")
	}

	if i.Quantity < 0 {
		return mark.Message(InvalidInputMark, "Quantity cannot be negative")
	}

	if !expirationDatePattern.MatchString(i.ExpirationDate) {
		return mark.Message(InvalidInputMark, "Expiration date must be in YYYY-MM-DD format")
	}

	return nil
}

func (i Input) ToMedicine() Medicine {
	return Medicine{
		UserSub:        i.UserSub,
		Name:           i.Name,
		Type:           i.Type,
		Quantity:       i.Quantity,
		ExpirationDate: i.ExpirationDate,
	}
}

type UpdateInput struct {
	Input
	MedicineID string
}

func (u UpdateInput) Validate() error {
	if u.MedicineID == "" {
		return mark.Message(InvalidInputMark, "No medicine was selected to update")
	}

	return u.Input.Validate()
}

func (u UpdateInput) ToMedicine() Medicine {
	medicine := u.Input.ToMedicine()
	medicine.MedicineID = u.MedicineID
	return medicine
}
