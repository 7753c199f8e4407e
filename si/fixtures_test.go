package si

import (
	"math"
	"math/rand"
	"time"

	"github.com/sartorproj/gospei/timeseries"
)

var fixtureStart = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

const fixtureDays = 10 * 365

// precFixture returns daily precipitation in m/d with a seasonal wet-day
// frequency and roughly 60% dry days.
func precFixture() *timeseries.Series {
	rng := rand.New(rand.NewSource(42))
	values := make([]float64, fixtureDays)
	for i := range values {
		season := math.Sin(2 * math.Pi * float64(i) / 365.25)
		if rng.Float64() < 0.4+0.15*season {
			values[i] = rng.ExpFloat64() * 3e-3
		}
	}
	s := timeseries.NewDaily(fixtureStart, values)
	s.Name = "prec"
	return s
}

// drySpellPrecFixture returns daily precipitation in m/d like precFixture,
// but with no rain from day 180 to 229 of every year, so that 30-day sums
// in late July and August are exactly zero.
func drySpellPrecFixture() *timeseries.Series {
	s := precFixture()
	for i, ts := range s.Timestamps {
		if doy := ts.YearDay(); doy >= 180 && doy < 230 {
			s.Values[i] = 0
		}
	}
	s.Name = "prec"
	return s
}

// evapFixture returns daily evaporation in m/d peaking in summer.
func evapFixture() *timeseries.Series {
	rng := rand.New(rand.NewSource(7))
	values := make([]float64, fixtureDays)
	for i := range values {
		season := math.Sin(2 * math.Pi * (float64(i) - 80) / 365.25)
		values[i] = (1.5 + 1.2*season + 0.3*rng.NormFloat64()) * 1e-3
		values[i] = math.Max(values[i], 0)
	}
	s := timeseries.NewDaily(fixtureStart, values)
	s.Name = "evap"
	return s
}

// headFixture returns a groundwater head in m with a seasonal cycle and a
// slow random walk.
func headFixture() *timeseries.Series {
	rng := rand.New(rand.NewSource(3))
	values := make([]float64, fixtureDays)
	walk := 0.0
	for i := range values {
		walk += 0.01 * rng.NormFloat64()
		values[i] = 12 + 0.5*math.Sin(2*math.Pi*float64(i)/365.25) + walk
	}
	s := timeseries.NewDaily(fixtureStart, values)
	s.Name = "head"
	return s
}

func precmmFixture() *timeseries.Series {
	return precFixture().Scale(1e3).Rename("precmm")
}

// deficitFixture returns evaporation minus precipitation in mm/d.
func deficitFixture() *timeseries.Series {
	return evapFixture().Scale(1e3).Sub(precmmFixture()).Rename("deficit")
}

// rolledPrecFixture returns the 30-day precipitation sum in mm.
func rolledPrecFixture() *timeseries.Series {
	rolled, err := precmmFixture().RollingSum(timeseries.NewWindow(30*timeseries.Day, 30))
	if err != nil {
		panic(err)
	}
	return rolled.DropNaN()
}
