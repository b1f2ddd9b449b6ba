package medicineentity_test

import (
	"github.com/cockroachdb/errors/markers"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Input", func() {
	var input medicineentity.Input

	BeforeEach(func() {
		input = medicineentity.Input{
			UserSub:        "a-user-sub",
			Name:           "Ibuprofen",
			Type:           "Painkiller",
			Quantity:       20,
			ExpirationDate: "2025-01-01",
		}
	})

	It("accepts a well formed medicine", func() {
		Expect(input.Validate()).To(Succeed())
	})

	It("rejects an empty name", func() {
		input.Name = ""

		err := input.Validate()
		Expect(err).To(HaveOccurred())
		Expect(markers.Is(err, medicineentity.InvalidInputMark)).To(BeTrue())
	})

	It("rejects a negative quantity", func() {
		input.Quantity = -1

		err := input.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("negative"))
	})

	It("accepts a zero quantity", func() {
		input.Quantity = 0
		Expect(input.Validate()).To(Succeed())
	})

	It("rejects a date that isn't YYYY-MM-DD", func() {
		input.ExpirationDate = "2025/01/01"

		err := input.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("YYYY-MM-DD"))
	})
})

var _ = Describe("UpdateInput", func() {
	var input medicineentity.UpdateInput

	BeforeEach(func() {
		input = medicineentity.UpdateInput{
			Input: medicineentity.Input{
				UserSub:        "a-user-sub",
				Name:           "Ibuprofen",
				Type:           "Painkiller",
				Quantity:       20,
				ExpirationDate: "2025-01-01",
			},
			MedicineID: "a-medicine-id",
		}
	})

	It("accepts a well formed update", func() {
		Expect(input.Validate()).To(Succeed())
	})

	It("rejects a missing medicine ID", func() {
		input.MedicineID = ""

		err := input.Validate()
		Expect(err).To(HaveOccurred())
		Expect(markers.Is(err, medicineentity.InvalidInputMark)).To(BeTrue())
	})

	It("still runs the base validations", func() {
		input.ExpirationDate = "soon"

		err := input.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("YYYY-MM-DD"))
	})
})

var _ = Describe("Medicine", func() {
	It("creates an ID only for new medicines", func() {
		medicine := medicineentity.Input{
			UserSub:        "a-user-sub",
			Name:           "Ibuprofen",
			Quantity:       1,
			ExpirationDate: "2025-01-01",
		}.ToMedicine()

		Expect(medicine.IsNew()).To(BeTrue())

		medicine.CreateID()
		Expect(medicine.MedicineID).NotTo(BeEmpty())
		Expect(medicine.IsNew()).To(BeFalse())

		Expect(func() { medicine.CreateID() }).To(Panic())
	})
})
