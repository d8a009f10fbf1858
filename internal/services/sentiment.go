package services

import (
	"strings"

	"sambatin/internal/models"
)

// 简单的关键词情绪识别，发帖时计算一次，之后不再重算

var angryWords = []string{
	"kesel", "marah", "benci", "sebel", "goblok", "tolol", "bodoh", "bangsat",
	"anjir", "anjing", "bego", "idiot", "nyebelin", "jengkel", "emosi", "murka",
	"geram", "dongkol", "sebal", "sialan", "kampret", "bacot", "tai", "kontol",
	"!!", "!!!", "wtf", "fck", "fuck", "shit", "damn", "hell",
}

var sadWords = []string{
	"sedih", "galau", "nangis", "patah hati", "sakit hati", "kecewa", "menyesal",
	"sepi", "kesepian", "sendiri", "hampa", "kosong", "down", "depresi", "stress",
	"capek", "lelah", "bosan", "jenuh", "mati rasa", "hopeless", "putus asa",
	"gagal", "rugi", "kehilangan", "rindu", "kangen", "baper", ":(", "T_T", "huhu",
}

var happyWords = []string{
	"senang", "gembira", "bahagia", "ceria", "seru", "asik", "mantap", "keren",
	"bagus", "hebat", "wow", "amazing", "luar biasa", "sukses", "menang", "berhasil",
	"lucu", "ngakak", "wkwk", "haha", "lol", "rofl", "xD", ":D", ":)", "^^",
	"yeay", "horee", "asyik", "gokil", "mantul", "josss", "gas", "semangat",
}

// countWordMatches 统计词表中每个词在文本里出现的总次数（大小写不敏感）
func countWordMatches(text string, wordList []string) int {
	lowerText := strings.ToLower(text)
	count := 0
	for _, word := range wordList {
		count += strings.Count(lowerText, strings.ToLower(word))
	}
	return count
}

// capsRatio returns the share of ASCII uppercase letters among all runes.
// Empty input yields 0, never NaN.
func capsRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	upper := 0
	for _, r := range runes {
		if r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	return float64(upper) / float64(len(runes))
}

// AnalyzeSentiment classifies free-form text into one of four categories.
// A caps ratio above 0.5 adds a fixed bonus of 2 to the angry count;
// ties resolve in priority order angry > sad > happy, and a zero maximum
// means neutral.
func AnalyzeSentiment(text string) models.Sentiment {
	angryCount := countWordMatches(text, angryWords)
	sadCount := countWordMatches(text, sadWords)
	happyCount := countWordMatches(text, happyWords)

	if capsRatio(text) > 0.5 {
		angryCount += 2
	}

	max := angryCount
	if sadCount > max {
		max = sadCount
	}
	if happyCount > max {
		max = happyCount
	}

	if max == 0 {
		return models.SentimentNeutral
	}
	if angryCount == max {
		return models.SentimentAngry
	}
	if sadCount == max {
		return models.SentimentSad
	}
	return models.SentimentHappy
}
