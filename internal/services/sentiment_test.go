package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sambatin/internal/models"
)

func TestAnalyzeSentiment_Neutral(t *testing.T) {
	assert.Equal(t, models.SentimentNeutral, AnalyzeSentiment("hari ini biasa aja"))
}

func TestAnalyzeSentiment_EmptyString(t *testing.T) {
	// 空串不能出 NaN，必须稳定落到 neutral
	assert.Equal(t, models.SentimentNeutral, AnalyzeSentiment(""))
}

func TestAnalyzeSentiment_Sad(t *testing.T) {
	assert.Equal(t, models.SentimentSad, AnalyzeSentiment("aku sedih banget"))
}

func TestAnalyzeSentiment_SadFromCapek(t *testing.T) {
	assert.Equal(t, models.SentimentSad, AnalyzeSentiment("aku capek banget sama kerjaan"))
}

func TestAnalyzeSentiment_Happy(t *testing.T) {
	assert.Equal(t, models.SentimentHappy, AnalyzeSentiment("wkwk ngakak parah"))
}

func TestAnalyzeSentiment_Angry(t *testing.T) {
	assert.Equal(t, models.SentimentAngry, AnalyzeSentiment("kesel banget sama dia"))
}

func TestAnalyzeSentiment_CapsBonus(t *testing.T) {
	// 大写占比超过一半给 angry 加 2 分
	assert.Equal(t, models.SentimentAngry, AnalyzeSentiment("HELLO THIS IS ALL CAPS AAAA"))
}

func TestAnalyzeSentiment_CapsRatioAtMost50Percent(t *testing.T) {
	// 恰好一半大写不触发加分
	assert.Equal(t, models.SentimentNeutral, AnalyzeSentiment("ABab"))
}

func TestAnalyzeSentiment_TieResolvesToAngry(t *testing.T) {
	// 同分时优先级 angry > sad > happy
	assert.Equal(t, models.SentimentAngry, AnalyzeSentiment("marah sedih"))
}

func TestAnalyzeSentiment_TieSadOverHappy(t *testing.T) {
	assert.Equal(t, models.SentimentSad, AnalyzeSentiment("sedih senang"))
}

func TestAnalyzeSentiment_RepeatedMarkersAllCount(t *testing.T) {
	// sad 出现两次压过 angry 一次
	assert.Equal(t, models.SentimentSad, AnalyzeSentiment("kesel, tapi sedih... sedih banget"))
}
