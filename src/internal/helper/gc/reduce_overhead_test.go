// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferOperations(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  string
	}{
		{
			name:  "write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  "hello",
		},
		{
			name:  "write string",
			setup: func(buf Buffer) { buf.WriteString("-----BEGIN CERTIFICATE-----") },
			want:  "-----BEGIN CERTIFICATE-----",
		},
		{
			name:  "write single byte",
			setup: func(buf Buffer) { buf.WriteByte('A') },
			want:  "A",
		},
		{
			name: "mixed writes",
			setup: func(buf Buffer) {
				buf.Write([]byte("chain"))
				buf.WriteString(" data")
				buf.WriteByte('!')
			},
			want: "chain data!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, len(tt.want), buf.Len())
			assert.Equal(t, []byte(tt.want), buf.Bytes())
		})
	}
}

func TestBufferReadFrom(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	n, err := buf.ReadFrom(strings.NewReader("certificate bytes"))
	require.NoError(t, err)
	assert.EqualValues(t, 17, n)
	assert.Equal(t, "certificate bytes", buf.String())
}

func TestBufferResetClearsData(t *testing.T) {
	buf := Default.Get()
	defer Default.Put(buf)

	buf.WriteString("sensitive")
	buf.Reset()
	assert.Zero(t, buf.Len())
}

func TestPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := Default.Get()
			buf.WriteString("concurrent")
			assert.Equal(t, 10, buf.Len())
			buf.Reset()
			Default.Put(buf)
		}()
	}
	wg.Wait()
}

// mockBuffer ensures Put tolerates foreign Buffer implementations.
type mockBuffer struct{ Buffer }

func TestPoolPutForeignBuffer(t *testing.T) {
	assert.NotPanics(t, func() { Default.Put(mockBuffer{}) })
}
