package logsController

import (
	"time"

	. "studytrack/internal/models"
)

type DailyDatum struct {
	Date      time.Time `json:"date"`
	Questions int       `json:"questions"`
	Time      int       `json:"time"`
}

type Analytics struct {
	TotalQuestions   int          `json:"totalQuestions"`
	TotalTime        int          `json:"totalTime"`
	AverageQuestions float64      `json:"averageQuestions"`
	StudyDays        int          `json:"studyDays"`
	DailyData        []DailyDatum `json:"dailyData"`
}

// Aggregate reduces a windowed slice of logs, ordered ascending by date, to
// summary statistics and a per-record time series. Days without a record are
// simply absent from DailyData; there is no gap filling. A stateless
// reduction: it never writes anywhere.
func Aggregate(logs []*DailyLog) *Analytics {
	analytics := &Analytics{
		DailyData: make([]DailyDatum, 0, len(logs)),
	}

	for _, entry := range logs {
		analytics.TotalQuestions += entry.QuestionsSolved
		analytics.TotalTime += entry.TimeStudied
		if entry.QuestionsSolved > 0 {
			analytics.StudyDays++
		}
		analytics.DailyData = append(analytics.DailyData, DailyDatum{
			Date:      entry.Date,
			Questions: entry.QuestionsSolved,
			Time:      entry.TimeStudied,
		})
	}

	if len(logs) > 0 {
		analytics.AverageQuestions = float64(analytics.TotalQuestions) / float64(len(logs))
	}

	return analytics
}
