package xerrors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	// nil 错误应返回 nil
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v，期望 nil", err)
	}

	base := errors.New("base error")
	wrapped := Wrap(base, "context")
	if wrapped.Error() != "context: base error" {
		t.Errorf("Wrap(err).Error() = %q，期望 %q", wrapped.Error(), "context: base error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false，期望 true")
	}
}

func TestWrapf(t *testing.T) {
	if err := Wrapf(nil, "backend %s", "cs"); err != nil {
		t.Errorf("Wrapf(nil) = %v，期望 nil", err)
	}

	base := errors.New("unsupported")
	wrapped := Wrapf(base, "backend %s", "cs")
	if wrapped.Error() != "backend cs: unsupported" {
		t.Errorf("Wrapf(err).Error() = %q，期望 %q", wrapped.Error(), "backend cs: unsupported")
	}
}

func TestWithCode(t *testing.T) {
	if err := WithCode(nil, "CODE"); err != nil {
		t.Errorf("WithCode(nil) = %v，期望 nil", err)
	}

	base := errors.New("deadlocked")
	coded := WithCode(base, "DEADLOCK")
	if coded.Error() != "[DEADLOCK] deadlocked" {
		t.Errorf("WithCode(err).Error() = %q", coded.Error())
	}
	if code := GetCode(Wrap(coded, "local")); code != "DEADLOCK" {
		t.Errorf("GetCode(wrapped) = %q，期望 %q", code, "DEADLOCK")
	}
	if code := GetCode(base); code != "" {
		t.Errorf("GetCode(base) = %q，期望空串", code)
	}
}

func TestFromPanic(t *testing.T) {
	if err := FromPanic(nil); err != nil {
		t.Errorf("FromPanic(nil) = %v，期望 nil", err)
	}

	// 非 error 的 panic 值
	err := FromPanic("boom")
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("FromPanic 返回类型 = %T，期望 *PanicError", err)
	}
	if pe.Value != "boom" {
		t.Errorf("pe.Value = %v，期望 boom", pe.Value)
	}
	if errors.Unwrap(err) != nil {
		t.Error("字符串 panic 值不应可 Unwrap")
	}

	// error 类型的 panic 值应可被 errors.Is 匹配
	sentinel := errors.New("sentinel")
	if !errors.Is(FromPanic(sentinel), sentinel) {
		t.Error("errors.Is(FromPanic(sentinel), sentinel) = false，期望 true")
	}
}

func TestMust(t *testing.T) {
	if v := Must(42, nil); v != 42 {
		t.Errorf("Must(42, nil) = %d，期望 42", v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must(_, err) 未触发 panic")
		}
	}()
	Must(0, errors.New("error"))
}

func TestCombine(t *testing.T) {
	if err := Combine(nil, nil); err != nil {
		t.Errorf("Combine(nil, nil) = %v，期望 nil", err)
	}

	err1 := errors.New("error 1")
	if err := Combine(nil, err1, nil); err != err1 {
		t.Errorf("Combine(nil, err1, nil) = %v，期望 %v", err, err1)
	}

	err2 := errors.New("error 2")
	combined := Combine(err1, err2)
	multi, ok := combined.(*MultiError)
	if !ok {
		t.Fatalf("Combine(err1, err2) 类型 = %T，期望 *MultiError", combined)
	}
	if len(multi.Errors) != 2 {
		t.Errorf("multi.Errors 长度 = %d，期望 2", len(multi.Errors))
	}
	if !errors.Is(combined, err1) || !errors.Is(combined, err2) {
		t.Error("errors.Is 应能匹配 MultiError 中的每个错误")
	}
	if combined.Error() != "error 1 (and 1 more errors)" {
		t.Errorf("combined.Error() = %q", combined.Error())
	}
}
