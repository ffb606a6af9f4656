package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zlock/internal/core/domain"
)

func TestLockList_Indices(t *testing.T) {
	tests := []struct {
		name string
		list domain.LockList
		want []string
	}{
		{name: "empty", list: domain.LockList{}, want: []string{}},
		{name: "nil", list: nil, want: []string{}},
		{name: "single", list: domain.LockList{"bash"}, want: []string{"1"}},
		{name: "four", list: domain.LockList{"bash", "ksh", "tcsh", "zsh"}, want: []string{"4", "3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.Indices())
		})
	}
}

func TestLockList_Contains(t *testing.T) {
	l := domain.LockList{"bash", "kernel-*"}

	assert.True(t, l.Contains("bash"))
	assert.True(t, l.Contains("kernel-*"))
	assert.False(t, l.Contains("kernel-default"), "patterns are compared literally")
	assert.False(t, l.Contains("Bash"))
	assert.False(t, domain.LockList(nil).Contains("bash"))
}

func TestLockList_Clone(t *testing.T) {
	l := domain.LockList{"bash", "zsh"}
	c := l.Clone()

	c[0] = "tcsh"
	assert.Equal(t, "bash", l[0])

	empty := domain.LockList(nil).Clone()
	assert.NotNil(t, empty)
	assert.Equal(t, 0, empty.Len())
}

func TestLockList_Digest(t *testing.T) {
	a := domain.NewLockList("bash", "zsh")
	b := domain.NewLockList("bash", "zsh")

	assert.Equal(t, a.Digest(), b.Digest(), "digest is deterministic")
	assert.NotEqual(t, a.Digest(), domain.NewLockList("zsh", "bash").Digest(), "digest is order sensitive")
	assert.NotEqual(t, a.Digest(), domain.NewLockList("bashzsh").Digest(), "entries are delimited")
	assert.Equal(t, domain.LockList(nil).Digest(), domain.LockList{}.Digest())
	assert.NotEmpty(t, domain.LockList{}.Digest())
}

func TestLockList_String(t *testing.T) {
	l := domain.LockList{"bash", "zsh"}

	assert.Equal(t, "bash, zsh", l.String())
}
