package service

import (
	"errors"
	"fmt"

	"go-shop-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Error definitions
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError names the resource and id that matched no row. It satisfies
// errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("There is no %s with ID: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// notFound turns gorm.ErrRecordNotFound into a NotFoundError and passes every
// other error through untouched, so raw database messages reach the client.
func notFound(err error, resource string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return nil
}

// Change actions published after a successful write.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeNotifier receives every successful write. Implementations must not block.
type ChangeNotifier interface {
	Publish(resource, action string, id uuid.UUID, data interface{})
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, string, uuid.UUID, interface{}) {}

func orNoop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
