package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"presensi_backend/internals/helpers/apperr"
	"presensi_backend/internals/helpers/dbtime"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator: satu instance untuk seluruh proses (cache struct metadata).
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// pakai nama json di pesan error
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("attendance_time", func(fl validator.FieldLevel) bool {
			_, err := dbtime.Parse(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("attendance_date", func(fl validator.FieldLevel) bool {
			return dbtime.IsDate(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// ValidateStruct menjalankan validator dan mengembalikan apperr InvalidInput
// dengan detail per field. prefix dipakai untuk elemen array, mis. "entries[2]".
func ValidateStruct(s any, prefix string) error {
	fields := FieldErrors(Validator().Struct(s), prefix)
	if len(fields) == 0 {
		return nil
	}
	return apperr.InvalidInput("Validasi gagal", fields)
}

// FieldErrors: validator.ValidationErrors → map field → tag.
func FieldErrors(err error, prefix string) map[string][]string {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{strings.TrimSuffix(prefix, "."): {err.Error()}}
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := fe.Field()
		if prefix != "" {
			key = prefix + "." + key
		}
		out[key] = append(out[key], fe.Tag())
	}
	return out
}
