package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonaGenerate_AlwaysFromCuratedList(t *testing.T) {
	s := NewPersonaService()

	for i := 0; i < 100; i++ {
		p := s.Generate()
		known, ok := s.Lookup(p.Name)
		assert.True(t, ok, "generated persona %q not in curated list", p.Name)
		assert.Equal(t, known, p)
		assert.NotEmpty(t, p.Emoji)
	}
}

func TestPersonaGenerate_IndependentCalls(t *testing.T) {
	s := NewPersonaService()

	// 独立抽样，52 个马甲连抽 50 次不可能全相同
	first := s.Generate()
	allSame := true
	for i := 0; i < 50; i++ {
		if s.Generate() != first {
			allSame = false
			break
		}
	}
	assert.False(t, allSame)
}

func TestPersonaFullDisplay(t *testing.T) {
	assert.Equal(t, "Si Bucin 💕", Persona{Name: "Si Bucin", Emoji: "💕"}.FullDisplay())
	assert.Equal(t, "Custom Name", Persona{Name: "Custom Name"}.FullDisplay())
}

func TestPersonaLookup_Unknown(t *testing.T) {
	s := NewPersonaService()
	_, ok := s.Lookup("Bukan Persona")
	assert.False(t, ok)
}
