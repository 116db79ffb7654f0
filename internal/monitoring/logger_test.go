package monitoring

import "testing"

func TestSetLogger_Custom(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) { called = true })
	Logf("points loaded: %d", 10)

	if !called {
		t.Error("custom logger was not called")
	}
}

func TestSetLogger_NilInstallsNoop(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) { called = true })
	SetLogger(nil)
	Logf("should be dropped")

	if called {
		t.Error("no-op logger should not invoke the previous logger")
	}
}

func TestLogf_DefaultNotNil(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should have a default logger")
	}
	Logf("default logger: %s", "ok")
}
