package config

import (
	"testing"
	"time"

	kit "hourglass/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  hourglass ")
	got := c.MustString("NAME")
	if got != "hourglass" {
		t.Fatalf("MustString = %q, want %q", got, "hourglass")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	// should not panic
	c.Require("A", "B")

	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("S_SET", " val ")
	if got := c.MayString("SET", "def"); got != "val" {
		t.Fatalf("MayString = %q, want %q", got, "val")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("I_N", " 42 ")
	if got := c.MayInt("N", 7); got != 42 {
		t.Fatalf("MayInt = %d, want 42", got)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); !got {
		t.Fatalf("MayBool default = %v", got)
	}
	t.Setenv("B_OFF", "false")
	if got := c.MayBool("OFF", true); got {
		t.Fatalf("MayBool = %v, want false", got)
	}
	t.Setenv("B_BAD", "notabool")
	if got := c.MayBool("BAD", true); !got {
		t.Fatalf("MayBool invalid should fall back, got %v", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want 250ms", got)
	}
	t.Setenv("D_BAD", "nope")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid should fall back, got %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "monday", "monday", "sunday"); got != "monday" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_WS", "SUNDAY")
	if got := c.MayEnum("WS", "monday", "monday", "sunday"); got != "SUNDAY" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_BAD", "wednesday")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "monday", "monday", "sunday") })
}
