package medicinestorage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors/markers"
	"github.com/guregu/dynamo"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Medicine records", func() {
	var item map[string]*dynamodb.AttributeValue

	BeforeEach(func() {
		item = map[string]*dynamodb.AttributeValue{
			"user_sub":        {S: aws.String("a-user-sub")},
			"medicine_id":     {S: aws.String("a-medicine-id")},
			"medicine_name":   {S: aws.String("Ibuprofen")},
			"medicine_type":   {S: aws.String("Painkiller")},
			"quantity":        {N: aws.String("3")},
			"expiration_date": {S: aws.String("2027-06-30")},
		}
	})

	It("unmarshals a well formed item", func() {
		record := dbMedicine{}
		Expect(dynamo.UnmarshalItem(item, &record)).To(Succeed())

		Expect(record.toEntity()).To(Equal(medicineentity.Medicine{
			UserSub:        "a-user-sub",
			MedicineID:     "a-medicine-id",
			Name:           "Ibuprofen",
			Type:           "Painkiller",
			Quantity:       3,
			ExpirationDate: "2027-06-30",
		}))
	})

	It("rejects an item without an owner", func() {
		delete(item, "user_sub")

		record := dbMedicine{}
		err := dynamo.UnmarshalItem(item, &record)
		Expect(err).To(HaveOccurred())
		Expect(markers.Is(err, MedicineUnmarshalMark)).To(BeTrue())
	})

	It("rejects an item without an ID", func() {
		delete(item, "medicine_id")

		record := dbMedicine{}
		err := dynamo.UnmarshalItem(item, &record)
		Expect(err).To(HaveOccurred())
		Expect(markers.Is(err, MedicineUnmarshalMark)).To(BeTrue())
	})

	It("rejects an item whose ID isn't a string", func() {
		item["medicine_id"] = &dynamodb.AttributeValue{N: aws.String("42")}

		record := dbMedicine{}
		err := dynamo.UnmarshalItem(item, &record)
		Expect(err).To(HaveOccurred())
		Expect(markers.Is(err, MedicineUnmarshalMark)).To(BeTrue())
	})
})
