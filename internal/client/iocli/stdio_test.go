package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestStream_Print(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(strings.NewReader(""), &buf)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")
	_, err := s.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", buf.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	// Сохраняем старый os.Stdin и восстанавливаем после
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}

// Буфер общий: вторая строка не теряется после первого чтения
func TestStream_ReadInputKeepsBuffer(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(" first \nsecond"), &out)

	first, err := s.ReadInput("1: ")
	require.NoError(t, err)
	second, err := s.ReadInput("2: ")
	require.NoError(t, err)
	_, err = s.ReadInput("3: ")

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "1: 2: 3: ", out.String())
}

func TestStream_ReadPasswordNotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("s3cret\n"), &out)

	pw, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Password: ", out.String())
}
