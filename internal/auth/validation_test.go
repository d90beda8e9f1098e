package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"ok", "Str0ng!pass", true},
		{"minimum length", "Aa1!bcde", true},
		{"too short", "Aa1!bcd", false},
		{"too long", "Aa1!" + "abcdefghijklmnopq", false},
		{"no upper", "str0ng!pass", false},
		{"no lower", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, passwordMeetsPolicy(tc.password))
		})
	}
}
