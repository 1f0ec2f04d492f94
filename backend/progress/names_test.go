package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubjectNameCanonical(t *testing.T) {
	assert.Equal(t, "Matemáticas", ResolveSubjectName("matematicas", 0))
	assert.Equal(t, "Ciencias Naturales", ResolveSubjectName("ciencias", 3))
	// Case-insensitive.
	assert.Equal(t, "Matemáticas", ResolveSubjectName("Matematicas", 0))
	assert.Equal(t, "Educación Física", ResolveSubjectName("EDUCACION_FISICA", 0))
}

func TestResolveSubjectNameOpaqueIDUsesPosition(t *testing.T) {
	// 16-character alphanumeric id: looks like a generated hash, so the
	// positional fallback list applies, never the humanized raw id.
	id := "x7Jk29PqLmN0vRtz"

	assert.Equal(t, "Matemáticas", ResolveSubjectName(id, 0))
	assert.Equal(t, "Ciencias", ResolveSubjectName(id, 1))
	assert.Equal(t, "Geografía", ResolveSubjectName(id, 4))
}

func TestResolveSubjectNameOpaqueBeyondList(t *testing.T) {
	assert.Equal(t, "Materia 6", ResolveSubjectName("x7Jk29PqLmN0vRtz", 5))
	assert.Equal(t, "Materia 9", ResolveSubjectName("x7Jk29PqLmN0vRtz", 8))
}

func TestResolveSubjectNameHumanizesSlugs(t *testing.T) {
	assert.Equal(t, "Biologia", ResolveSubjectName("biologia", 0))
	assert.Equal(t, "Artes Plasticas", ResolveSubjectName("artesPlasticas", 0))
}

func TestResolveTopicNameCanonical(t *testing.T) {
	assert.Equal(t, "Sistema Solar", ResolveTopicName("sistema_solar", 0))
	assert.Equal(t, "Las Plantas", ResolveTopicName("plantas", 2))
	assert.Equal(t, "Estados de la Materia", ResolveTopicName("estados_materia", 0))
}

func TestResolveTopicNameOpaqueAndFallback(t *testing.T) {
	opaque := "a1b2c3d4e5f6g7h8i9"
	assert.Equal(t, "Fracciones", ResolveTopicName(opaque, 0))
	assert.Equal(t, "Tema 7", ResolveTopicName(opaque, 6))

	assert.Equal(t, "Volcanes", ResolveTopicName("volcanes", 0))
}

func TestLooksOpaqueHeuristic(t *testing.T) {
	// The documented heuristic: length > 15 or alphanumeric of length >= 15.
	assert.True(t, looksOpaque("x7Jk29PqLmN0vRtz"))       // 16 alnum
	assert.True(t, looksOpaque("abcdefghij12345"))        // exactly 15 alnum
	assert.True(t, looksOpaque("historia_contemporanea")) // long natural slug, caught by the length cutoff
	assert.False(t, looksOpaque("a1b2c3"))                // short hash slips through
	assert.False(t, looksOpaque("matematicas"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Fracciones", humanize("fracciones"))
	assert.Equal(t, "Cuerpo humano", humanize("cuerpo_humano"))
	assert.Equal(t, "Sistema Solar", humanize("sistemaSolar"))
	assert.Equal(t, "", humanize(""))
}
