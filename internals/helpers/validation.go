// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Satu instance validator untuk seluruh aplikasi.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nama field pada error mengikuti json tag DTO, bukan nama field Go,
	// supaya client bisa mencocokkan error dengan field request.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct menjalankan skema validasi DTO dan mengubah hasilnya
// menjadi daftar FieldError berurutan sesuai deklarasi field pada struct.
func ValidateStruct(s any) []FieldError {
	if err := Validate.Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				out = append(out, FieldError{
					Field:   jsonFieldName(fe),
					Message: messageForTag(fe),
				})
			}
			return out
		}
		return []FieldError{{Field: "body", Message: "Input tidak valid"}}
	}
	return nil
}

// jsonFieldName mengambil nama field hasil RegisterTagNameFunc (json tag).
func jsonFieldName(fe validator.FieldError) string {
	return fe.Field()
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return fmt.Sprintf("minimal %s karakter", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s karakter", fe.Param())
	case "gt":
		return fmt.Sprintf("harus lebih besar dari %s", fe.Param())
	case "gte":
		return fmt.Sprintf("tidak boleh kurang dari %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("harus salah satu dari: %s", fe.Param())
	case "datetime":
		return "format tanggal harus YYYY-MM-DD"
	case "uuid":
		return "format id tidak valid"
	default:
		return "tidak valid"
	}
}
