package db

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
)

func TestHandleQueryError_NoDocuments(t *testing.T) {
	notFound := errors.New("record not found")

	err := HandleQueryError(mongo.ErrNoDocuments, notFound, "find", "things", time.Now())
	if !errors.Is(err, notFound) {
		t.Errorf("expected the caller's not-found error, got %v", err)
	}
}

func TestHandleQueryError_Nil(t *testing.T) {
	if err := HandleQueryError(nil, errors.New("unused"), "find", "things", time.Now()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestHandleQueryError_OtherErrors(t *testing.T) {
	cause := errors.New("command failed")

	err := HandleQueryError(cause, errors.New("unused"), "find", "things", time.Now())
	if err == nil {
		t.Fatal("expected error")
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domainErr.Category() != commonerrors.CategoryExternal {
		t.Errorf("expected EXTERNAL category, got %s", domainErr.Category())
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to stay wrapped")
	}
}

func TestHandleExecError(t *testing.T) {
	if err := HandleExecError(nil, "insert", "things", time.Now()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := HandleExecError(errors.New("write failed"), "insert", "things", time.Now())
	if _, ok := commonerrors.AsDomainError(err); !ok {
		t.Errorf("expected a domain error, got %v", err)
	}
}
