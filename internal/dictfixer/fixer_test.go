package dictfixer

import (
	"errors"
	"github.com/creekorful/dictfixer/internal/wordlist"
	"github.com/creekorful/dictfixer/internal/wordlist_mock"
	"github.com/golang/mock/gomock"
	"testing"
)

func TestFixer_Fix(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	storageMock := wordlist_mock.NewMockStorage(mockCtrl)

	storageMock.EXPECT().Load("dict.txt").Return([]string{"Test", "Test's", "Tester", "Tested", "Testing"}, nil)
	storageMock.EXPECT().Store("fixed.txt", []string{"Test", "Tester", "Tested", "Testing"}).Return(nil)

	f := Fixer{storage: storageMock}

	summary, err := f.Fix("dict.txt", "fixed.txt")
	if err != nil {
		t.FailNow()
	}

	if summary != (Summary{Read: 5, Removed: 1, Written: 4}) {
		t.Errorf("got: %+v", summary)
	}
}

func TestFixer_FixEmpty(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	storageMock := wordlist_mock.NewMockStorage(mockCtrl)

	storageMock.EXPECT().Load("dict.txt").Return([]string{}, nil)
	storageMock.EXPECT().Store("fixed.txt", []string{}).Return(nil)

	f := NewFixer(storageMock)

	summary, err := f.Fix("dict.txt", "fixed.txt")
	if err != nil {
		t.FailNow()
	}

	if summary != (Summary{}) {
		t.Errorf("got: %+v", summary)
	}
}

func TestFixer_FixReadError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	storageMock := wordlist_mock.NewMockStorage(mockCtrl)

	// Store must never be called
	storageMock.EXPECT().
		Load("missing.txt").
		Return(nil, &wordlist.ReadError{Path: "missing.txt", Err: errors.New("no such file or directory")})

	f := Fixer{storage: storageMock}

	_, err := f.Fix("missing.txt", "fixed.txt")

	var readErr *wordlist.ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("got: %v, want ReadError", err)
	}
}

func TestFixer_FixWriteError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	storageMock := wordlist_mock.NewMockStorage(mockCtrl)

	storageMock.EXPECT().Load("dict.txt").Return([]string{"a", "b'"}, nil)
	storageMock.EXPECT().
		Store("/readonly/fixed.txt", []string{"a"}).
		Return(&wordlist.WriteError{Path: "/readonly/fixed.txt", Err: errors.New("permission denied")})

	f := Fixer{storage: storageMock}

	summary, err := f.Fix("dict.txt", "/readonly/fixed.txt")

	var writeErr *wordlist.WriteError
	if !errors.As(err, &writeErr) {
		t.Errorf("got: %v, want WriteError", err)
	}
	if summary != (Summary{}) {
		t.Errorf("got: %+v, want empty summary", summary)
	}
}
