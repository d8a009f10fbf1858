package services

import (
	"math/rand"
	"time"
)

// Persona 会话期间的匿名马甲，不落库
type Persona struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// FullDisplay is the name with its emoji suffix, as shown on cards.
func (p Persona) FullDisplay() string {
	if p.Emoji == "" {
		return p.Name
	}
	return p.Name + " " + p.Emoji
}

// Curated persona combinations that make sense (not random word mashing).
var personas = []Persona{
	// --- Vibe Check ---
	{Name: "Si Overthinking", Emoji: "🧠"},
	{Name: "Anak Healing", Emoji: "🧘"},
	{Name: "Korban Ghosting", Emoji: "👻"},
	{Name: "Budak Korporat", Emoji: "💼"},
	{Name: "Pengangguran Aesthetic", Emoji: "✨"},
	{Name: "Fresh Graduate Galau", Emoji: "🎓"},
	// --- Makanan Personality ---
	{Name: "Pecinta Seblak", Emoji: "🌶️"},
	{Name: "Penggila Indomie", Emoji: "🍜"},
	{Name: "Anak Mixue", Emoji: "🍦"},
	{Name: "Penikmat Kopi", Emoji: "☕"},
	{Name: "Korban Diet", Emoji: "🥗"},
	{Name: "Tanghulu Enjoyer", Emoji: "🍡"},
	// --- Relationship Status ---
	{Name: "Si Bucin", Emoji: "💕"},
	{Name: "Mantan Terindah", Emoji: "💔"},
	{Name: "Jomblo Bahagia", Emoji: "😌"},
	{Name: "Korban PHP", Emoji: "🤡"},
	{Name: "Situationship Victim", Emoji: "🎭"},
	{Name: "Delulu Setia", Emoji: "🦋"},
	// --- Internet Persona ---
	{Name: "Admin Menfess", Emoji: "📱"},
	{Name: "Warga Twitter", Emoji: "🐦"},
	{Name: "TikToker Gagal", Emoji: "🎬"},
	{Name: "Lurker Setia", Emoji: "👀"},
	{Name: "Keyboard Warrior", Emoji: "⌨️"},
	{Name: "Professional Stalker", Emoji: "🔍"},
	// --- Kucing & Hewan ---
	{Name: "Pemilik Oyen", Emoji: "🐱"},
	{Name: "Capybara Enthusiast", Emoji: "🦫"},
	{Name: "Cat Parent", Emoji: "🐈"},
	{Name: "Anabul Lover", Emoji: "🐾"},
	// --- Lifestyle ---
	{Name: "Anak Kos", Emoji: "🏠"},
	{Name: "Mahasiswa Abadi", Emoji: "📚"},
	{Name: "Pekerja Lembur", Emoji: "🌙"},
	{Name: "Weekend Warrior", Emoji: "🎉"},
	{Name: "Mager Professional", Emoji: "🛋️"},
	{Name: "Gabut Emperor", Emoji: "👑"},
	// --- Mood ---
	{Name: "Si Baper", Emoji: "😢"},
	{Name: "Drama Queen", Emoji: "👸"},
	{Name: "Overthinker Pro", Emoji: "💭"},
	{Name: "Anxiety Gang", Emoji: "😰"},
	{Name: "Main Character", Emoji: "⭐"},
	{Name: "NPC Energy", Emoji: "🗿"},
	// --- Gen-Z Vibes ---
	{Name: "Era Villain", Emoji: "😈"},
	{Name: "Era Healing", Emoji: "🌸"},
	{Name: "Slay Bestie", Emoji: "💅"},
	{Name: "Sigma Grindset", Emoji: "🔥"},
	{Name: "Literally Me", Emoji: "🎯"},
	{Name: "Real One", Emoji: "💯"},
	// --- Pekerjaan ---
	{Name: "Ojol Legend", Emoji: "🛵"},
	{Name: "Anak Startup", Emoji: "🚀"},
	{Name: "Freelancer Galau", Emoji: "💻"},
	{Name: "PNS Santuy", Emoji: "🏛️"},
	{Name: "Pedagang Tanghulu", Emoji: "🍭"},
	{Name: "Barista Indie", Emoji: "🧋"},
}

type PersonaService struct {
	rnd *rand.Rand
}

func NewPersonaService() *PersonaService {
	return &PersonaService{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate picks one persona uniformly at random from the curated list.
// Callers are responsible for caching the result in the session.
func (s *PersonaService) Generate() Persona {
	return personas[s.rnd.Intn(len(personas))]
}

// Lookup finds a curated persona by name.
func (s *PersonaService) Lookup(name string) (Persona, bool) {
	for _, p := range personas {
		if p.Name == name {
			return p, true
		}
	}
	return Persona{}, false
}
