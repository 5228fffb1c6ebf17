// Package apperr mendefinisikan jenis error yang boleh keluar dari service.
// Error mentah dari store selalu diklasifikasi lewat FromStore sebelum naik ke controller.
package apperr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindInvalidInput     Kind = "INVALID_INPUT"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
)

// HTTPStatus memetakan kind ke status HTTP.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
	// Transient: timeout / koneksi putus, aman dicoba ulang.
	Transient bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable true hanya untuk kegagalan store sementara (timeout / koneksi).
func (e *Error) Retryable() bool { return e.Kind == KindStoreUnavailable && e.Transient }

func InvalidInput(msg string, fields map[string][]string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

// Unavailable: store sementara tidak bisa dijangkau, klien boleh retry.
func Unavailable(msg string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, Err: err, Transient: true}
}

// StoreFailure: store menolak operasi (constraint, tipe data, dsb). Retry tidak akan membantu.
func StoreFailure(msg string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, Err: err}
}

// KindOf mengembalikan kind dari err; error asing dianggap StoreUnavailable.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStoreUnavailable
}

func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// FromStore mengklasifikasi error dari gorm/driver. op dipakai untuk log.
func FromStore(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case IsDuplicateKey(err):
		log.Printf("[WARN] %s: duplicate key: %v", op, err)
		return Conflict("Data dengan kunci yang sama sudah ada", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Data tidak ditemukan")
	case isTransient(err):
		log.Printf("[ERROR] %s: store timeout/koneksi: %v", op, err)
		return Unavailable("Penyimpanan sedang tidak tersedia, silakan coba lagi", err)
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return StoreFailure("Gagal mengakses penyimpanan", err)
	}
}

// IsDuplicateKey mengenali pelanggaran unique dari postgres, sqlite, atau gorm.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	// 57014 = query_canceled (statement_timeout)
	return errors.As(err, &pgErr) && pgErr.Code == "57014"
}
