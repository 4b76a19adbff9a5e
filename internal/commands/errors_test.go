package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWrapErrorsCarryDomainScopedMessages(t *testing.T) {
	cases := []struct {
		name       string
		wrapped    error
		validation bool
		want       string
	}{
		{"validation", wrapValidationError(errors.New("bad message")), true, "blog command message failed validation"},
		{"canceled", wrapContextError(context.Canceled), false, "blog command cancelled"},
		{"deadline", wrapContextError(context.DeadlineExceeded), false, "blog command exceeded its deadline"},
		{"context", wrapContextError(errors.New("torn context")), false, "blog command context failure"},
		{"execute", wrapExecuteError(errors.New("boom")), false, "blog command execution failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wrapped == nil {
				t.Fatal("expected wrapped error")
			}
			category := goerrors.CategoryCommand
			if tc.validation {
				category = goerrors.CategoryValidation
			}
			if !goerrors.IsCategory(tc.wrapped, category) {
				t.Fatalf("expected category %v, got %v", category, tc.wrapped)
			}
			if !strings.Contains(tc.wrapped.Error(), tc.want) {
				t.Fatalf("expected message %q in %q", tc.want, tc.wrapped.Error())
			}
		})
	}
}

func TestWrapErrorsPassThrough(t *testing.T) {
	if err := wrapValidationError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := wrapExecuteError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	already := goerrors.Wrap(errors.New("boom"), goerrors.CategoryCommand, "wrapped once")
	if got := wrapExecuteError(already); got != already {
		t.Fatalf("expected wrapped errors untouched, got %v", got)
	}
	if !errors.Is(wrapContextError(context.Canceled), context.Canceled) {
		t.Fatal("expected cause to survive wrapping")
	}
}
