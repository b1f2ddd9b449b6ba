package medicinestorage

import "github.com/cockroachdb/errors/domains"

var (
	MedicineNotFoundMark  = domains.New("medicine_not_found")
	MedicineUnmarshalMark = domains.New("medicine_unmarshal")
	DefaultErrorMark      = domains.New("default_error")
)
