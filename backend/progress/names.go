package progress

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Display-name resolution is a chain of resolvers tried in order:
// canonical table, positional fallback for opaque ids, humanized raw id.
// The last resolver always matches.
type nameResolver func(id string, pos int) (string, bool)

var subjectNames = map[string]string{
	"matematicas":     "Matemáticas",
	"ciencias":        "Ciencias Naturales",
	"lenguaje":        "Lengua y Literatura",
	"historia":        "Historia",
	"geografia":       "Geografía",
	"ingles":          "Inglés",
	"arte":            "Educación Artística",
	"educacion_fisica": "Educación Física",
}

var topicNames = map[string]string{
	"fracciones":      "Fracciones",
	"decimales":       "Decimales",
	"porcentajes":     "Porcentajes",
	"geometria":       "Geometría",
	"algebra":         "Álgebra",
	"sistema_solar":   "Sistema Solar",
	"plantas":         "Las Plantas",
	"animales":        "Los Animales",
	"cuerpo_humano":   "Cuerpo Humano",
	"estados_materia": "Estados de la Materia",
}

var subjectDefaults = []string{"Matemáticas", "Ciencias", "Lengua", "Historia", "Geografía"}

var topicDefaults = []string{"Fracciones", "Decimales", "Sistema Solar", "Plantas", "Porcentajes"}

var subjectResolvers = []nameResolver{
	canonical(subjectNames),
	positional(subjectDefaults, "Materia"),
	humanized(),
}

var topicResolvers = []nameResolver{
	canonical(topicNames),
	positional(topicDefaults, "Tema"),
	humanized(),
}

// ResolveSubjectName maps a subject id to its display name. pos is the
// subject's position of first appearance among the aggregated groups.
func ResolveSubjectName(id string, pos int) string {
	return resolveName(id, pos, subjectResolvers)
}

// ResolveTopicName maps a topic id to its display name. pos is the
// topic's position of first appearance within its subject.
func ResolveTopicName(id string, pos int) string {
	return resolveName(id, pos, topicResolvers)
}

func resolveName(id string, pos int, resolvers []nameResolver) string {
	for _, resolve := range resolvers {
		if name, ok := resolve(id, pos); ok {
			return name
		}
	}
	return id
}

func canonical(table map[string]string) nameResolver {
	return func(id string, _ int) (string, bool) {
		name, ok := table[strings.ToLower(id)]
		return name, ok
	}
}

// opaqueID flags identifiers that look like generated hashes rather than
// human-readable slugs. Short hashes below 15 characters and long natural
// language ids slip through; that is the documented behavior.
var opaqueID = regexp.MustCompile(`^[a-zA-Z0-9]{15,}$`)

func looksOpaque(id string) bool {
	return len(id) > 15 || opaqueID.MatchString(id)
}

func positional(defaults []string, generic string) nameResolver {
	return func(id string, pos int) (string, bool) {
		if !looksOpaque(id) {
			return "", false
		}
		if pos >= 0 && pos < len(defaults) {
			return defaults[pos], true
		}
		return fmt.Sprintf("%s %d", generic, pos+1), true
	}
}

// humanized capitalizes the id and opens up underscores and camel-case
// boundaries. Always matches.
func humanized() nameResolver {
	return func(id string, _ int) (string, bool) {
		return humanize(id), true
	}
}

func humanize(id string) string {
	if id == "" {
		return id
	}

	var b strings.Builder
	for i, r := range id {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
