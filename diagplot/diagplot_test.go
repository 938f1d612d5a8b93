package diagplot

import "testing"

func TestRatioPlotRejectsNilRecords(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic on nil records")
		}
	}()
	RatioPlot(nil, "t", "/tmp/mcstep-diagplot-test")
}

func TestEnergyPlotRejectsNilRecords(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic on nil records")
		}
	}()
	EnergyPlot(nil, "t", "/tmp/mcstep-diagplot-test")
}
