package analytics

import (
	"sort"
	"strings"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
)

// UnspecifiedDiagnosis is the cohort bucket for patients without a recorded
// diagnosis. They are reported, never dropped.
const UnspecifiedDiagnosis = "Unspecified"

// RegionEffectiveness ranks one anatomical region by the average symptom
// improvement of the sessions that stimulated it.
type RegionEffectiveness struct {
	RegionID           string  `json:"regionId"`
	RegionName         string  `json:"regionName"`
	SessionCount       int     `json:"sessionCount"`
	PatientCount       int     `json:"patientCount"`
	TotalImprovement   float64 `json:"totalImprovement"`
	AverageImprovement float64 `json:"averageImprovement"`
}

// DiagnosisEffectiveness summarizes treatment outcomes for one diagnosis
// cohort.
type DiagnosisEffectiveness struct {
	Diagnosis          string  `json:"diagnosis"`
	PatientCount       int     `json:"patientCount"`
	AverageSessions    float64 `json:"averageSessions"`
	AverageSpanDays    float64 `json:"averageSpanDays"`
	AverageImprovement float64 `json:"averageImprovement"`
	ImprovementRate    float64 `json:"improvementRate"`
}

// EffectivenessByRegion aggregates per-session symptom improvement
// (patient baseline minus session symptom score, both on the 0-10 severity
// scale where higher is worse) by the regions the session stimulated.
//
// Sessions missing a symptom score, and sessions whose patient has no
// baseline, are excluded entirely; they never count as zero improvement.
// Points with no region mapping are skipped point-by-point. A session
// stimulating several points of the same region counts once for that
// region. Output is sorted by average improvement descending, ties broken
// by region ID.
func EffectivenessByRegion(regionMap *models.RegionMap, sessions []models.Session, patients []models.Patient) []RegionEffectiveness {
	baselines := make(map[string]float64, len(patients))
	for _, p := range patients {
		if p.BaselineScore != nil {
			baselines[p.ID] = *p.BaselineScore
		}
	}

	type accumulator struct {
		name       string
		sum        float64
		sessions   int
		patientIDs map[string]struct{}
	}
	byRegion := make(map[string]*accumulator)

	for _, s := range sessions {
		if s.SymptomScore == nil {
			continue
		}
		baseline, ok := baselines[s.PatientID]
		if !ok {
			continue
		}
		improvement := baseline - *s.SymptomScore

		touched := make(map[string]*models.AnatomicalRegion)
		for _, point := range s.Points {
			region, mapped := regionMap.RegionForPoint(point)
			if !mapped {
				continue
			}
			touched[region.ID] = region
		}

		for id, region := range touched {
			acc := byRegion[id]
			if acc == nil {
				acc = &accumulator{name: region.Name, patientIDs: make(map[string]struct{})}
				byRegion[id] = acc
			}
			acc.sum += improvement
			acc.sessions++
			acc.patientIDs[s.PatientID] = struct{}{}
		}
	}

	ranked := make([]RegionEffectiveness, 0, len(byRegion))
	for id, acc := range byRegion {
		ranked = append(ranked, RegionEffectiveness{
			RegionID:           id,
			RegionName:         acc.name,
			SessionCount:       acc.sessions,
			PatientCount:       len(acc.patientIDs),
			TotalImprovement:   acc.sum,
			AverageImprovement: acc.sum / float64(acc.sessions),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageImprovement != ranked[j].AverageImprovement {
			return ranked[i].AverageImprovement > ranked[j].AverageImprovement
		}
		return ranked[i].RegionID < ranked[j].RegionID
	})
	return ranked
}

// EffectivenessByDiagnosis groups patients into diagnosis cohorts and
// summarizes each cohort's outcomes. Improvement per patient is the
// baseline minus the symptom score of the latest scored session, or 0 when
// the patient has no baseline or no scored session. Patients without
// sessions contribute 0 to the span average. Output is sorted by
// improvement rate descending, ties broken by diagnosis label. An empty
// patient list yields an empty result.
func EffectivenessByDiagnosis(patients []models.Patient, sessions []models.Session) []DiagnosisEffectiveness {
	sessionsByPatient := make(map[string][]models.Session)
	for _, s := range sessions {
		sessionsByPatient[s.PatientID] = append(sessionsByPatient[s.PatientID], s)
	}

	type cohort struct {
		patients    int
		sessions    int
		spanDays    float64
		improvement float64
		improvedN   int
	}
	cohorts := make(map[string]*cohort)

	for _, p := range patients {
		diagnosis := strings.TrimSpace(p.Diagnosis)
		if diagnosis == "" {
			diagnosis = UnspecifiedDiagnosis
		}
		c := cohorts[diagnosis]
		if c == nil {
			c = &cohort{}
			cohorts[diagnosis] = c
		}

		own := sessionsByPatient[p.ID]
		c.patients++
		c.sessions += len(own)
		c.spanDays += treatmentSpanDays(own)

		improvement := 0.0
		if p.BaselineScore != nil {
			if latest, ok := latestScoredSession(own); ok {
				improvement = *p.BaselineScore - *latest.SymptomScore
			}
		}
		c.improvement += improvement
		if improvement > 0 {
			c.improvedN++
		}
	}

	ranked := make([]DiagnosisEffectiveness, 0, len(cohorts))
	for diagnosis, c := range cohorts {
		n := float64(c.patients)
		ranked = append(ranked, DiagnosisEffectiveness{
			Diagnosis:          diagnosis,
			PatientCount:       c.patients,
			AverageSessions:    float64(c.sessions) / n,
			AverageSpanDays:    c.spanDays / n,
			AverageImprovement: c.improvement / n,
			ImprovementRate:    float64(c.improvedN) / n * 100,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ImprovementRate != ranked[j].ImprovementRate {
			return ranked[i].ImprovementRate > ranked[j].ImprovementRate
		}
		return ranked[i].Diagnosis < ranked[j].Diagnosis
	})
	return ranked
}

// treatmentSpanDays is the distance in days between a patient's first and
// last session dates; 0 for fewer than two sessions.
func treatmentSpanDays(sessions []models.Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	first := sessions[0].SessionDate
	last := sessions[0].SessionDate
	for _, s := range sessions[1:] {
		if s.SessionDate.Before(first) {
			first = s.SessionDate
		}
		if s.SessionDate.After(last) {
			last = s.SessionDate
		}
	}
	return last.Sub(first).Hours() / 24
}

// latestScoredSession returns the most recent session carrying a symptom
// score.
func latestScoredSession(sessions []models.Session) (models.Session, bool) {
	var latest models.Session
	found := false
	for _, s := range sessions {
		if s.SymptomScore == nil {
			continue
		}
		if !found || s.SessionDate.After(latest.SessionDate) {
			latest = s
			found = true
		}
	}
	return latest, found
}
