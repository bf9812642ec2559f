package describe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stamp struct {
	time.Time
}

type login struct {
	User     *string
	Secret   *string `sensitive:"true"`
	Roles    []string
	Labels   map[string]string
	Payload  []byte
	At       *stamp
	Disabled bool

	unexported string
}

func str(s string) *string { return &s }

func TestString(t *testing.T) {
	t.Run("only set members", func(t *testing.T) {
		assert.Equal(t, "{User: ann, Disabled: false}", String(login{User: str("ann")}))
	})

	t.Run("sensitive redacted", func(t *testing.T) {
		got := String(&login{User: str("ann"), Secret: str("hunter2")})
		assert.Equal(t, "{User: ann, Secret: *** Sensitive Data Redacted ***, Disabled: false}", got)
	})

	t.Run("collections", func(t *testing.T) {
		got := String(login{
			Roles:    []string{"ADMIN", "READER"},
			Labels:   map[string]string{"b": "2", "a": "1"},
			Payload:  []byte("abc"),
			Disabled: true,
		})
		assert.Equal(t, "{Roles: [ADMIN, READER], Labels: {a: 1, b: 2}, Payload: <3 bytes>, Disabled: true}", got)
	})

	t.Run("embedded time", func(t *testing.T) {
		at := &stamp{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)}
		assert.Equal(t, "{At: 2020-01-02T03:04:05Z, Disabled: false}", String(login{At: at}))
	})

	t.Run("nil", func(t *testing.T) {
		var l *login
		assert.Equal(t, "<nil>", String(l))
		assert.Equal(t, "<nil>", String(nil))
	})
}
