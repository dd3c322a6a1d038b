package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("will set the error", func(t *testing.T) {
		t.Run("if a non-error value is panicked and no error was returned", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				panic("empty sequence")
			}

			err := f()

			var perr PanicError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "empty sequence", perr.Value)
			assert.Nil(t, perr.Unwrap())
		})

		t.Run("joined with an error that was already returned", func(t *testing.T) {
			funcErr := errors.New("func error")
			panicErr := errors.New("panic error")
			f := func() (err error) {
				defer Recover(&err)
				err = funcErr
				panic(panicErr)
			}

			err := f()

			assert.ErrorIs(t, err, funcErr)
			assert.ErrorIs(t, err, panicErr)
		})
	})

	t.Run("will not touch the error", func(t *testing.T) {
		t.Run("if nothing panics", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				return nil
			}

			assert.NoError(t, f())
		})
	})
}

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Run("will record a failed close", func(t *testing.T) {
		closeErr := errors.New("close failed")
		f := func() (err error) {
			defer Close(&err, closeFunc(func() error { return closeErr }))
			return nil
		}

		err := f()

		var cerr CloseError
		require.ErrorAs(t, err, &cerr)
		assert.ErrorIs(t, err, closeErr)
	})

	t.Run("will keep the original error alongside a failed close", func(t *testing.T) {
		closeErr := errors.New("close failed")
		funcErr := errors.New("func error")
		f := func() (err error) {
			defer Close(&err, closeFunc(func() error { return closeErr }))
			return funcErr
		}

		err := f()

		assert.ErrorIs(t, err, funcErr)
		assert.ErrorIs(t, err, closeErr)
	})

	t.Run("will ignore values that are not closers", func(t *testing.T) {
		f := func() (err error) {
			defer Close(&err, "not a closer")
			return nil
		}

		assert.NoError(t, f())
	})
}
