package devices

import "fmt"

// BatteryParams holds the static, validated configuration of a battery
// energy storage asset.
type BatteryParams struct {
	CapacityKWh     float64
	MaxChargeKW     float64
	MaxDischargeKW  float64
	EtaCharge       float64
	EtaDischarge    float64
}

// BatteryState holds the single piece of mutable state a battery carries
// between steps.
type BatteryState struct {
	SOC float64
}

// Battery tracks state-of-charge under asymmetric charge/discharge
// efficiency. Positive setpoints charge (grid-side import into the
// battery); negative setpoints discharge (grid-side export from the
// battery) — the same sign convention the feeder uses for import/export.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

// NewBattery validates params and the initial SOC and constructs a Battery.
func NewBattery(params BatteryParams, initialSOC float64) (*Battery, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if initialSOC < 0 || initialSOC > 1 {
		return nil, fmt.Errorf("battery: initial_soc must be within [0, 1], got %f", initialSOC)
	}
	return &Battery{Params: params, State: BatteryState{SOC: initialSOC}}, nil
}

// Validate checks that all battery parameters are physically sane.
func (p BatteryParams) Validate() error {
	if p.CapacityKWh <= 0 {
		return fmt.Errorf("battery: capacity_kwh must be > 0, got %f", p.CapacityKWh)
	}
	if p.MaxChargeKW < 0 {
		return fmt.Errorf("battery: max_charge_kw must be >= 0, got %f", p.MaxChargeKW)
	}
	if p.MaxDischargeKW < 0 {
		return fmt.Errorf("battery: max_discharge_kw must be >= 0, got %f", p.MaxDischargeKW)
	}
	if p.EtaCharge <= 0 || p.EtaCharge > 1 {
		return fmt.Errorf("battery: eta_charge must be within (0, 1], got %f", p.EtaCharge)
	}
	if p.EtaDischarge <= 0 || p.EtaDischarge > 1 {
		return fmt.Errorf("battery: eta_discharge must be within (0, 1], got %f", p.EtaDischarge)
	}
	return nil
}

// ClipDispatch clamps a requested setpoint (kW, positive=charge) to the
// power-rating limits and to what the remaining (or stored) energy can
// physically absorb/deliver within dtHours, given efficiency losses.
func (b *Battery) ClipDispatch(setpointKW, dtHours float64) float64 {
	setpointKW = clamp(setpointKW, -b.Params.MaxDischargeKW, b.Params.MaxChargeKW)

	if setpointKW > 0 {
		headroomKWh := (1 - b.State.SOC) * b.Params.CapacityKWh
		maxGridChargeKW := headroomKWh / (b.Params.EtaCharge * dtHours)
		if setpointKW > maxGridChargeKW {
			setpointKW = maxGridChargeKW
		}
	} else if setpointKW < 0 {
		availableKWh := b.State.SOC * b.Params.CapacityKWh
		maxGridDischargeKW := availableKWh * b.Params.EtaDischarge / dtHours
		if -setpointKW > maxGridDischargeKW {
			setpointKW = -maxGridDischargeKW
		}
	}
	return setpointKW
}

// ApplyDispatch commits a (pre-clipped) grid-side setpoint for dtHours,
// updating SOC and returning the actual grid-side kW delivered, which may
// differ slightly from setpointKW only if the caller skipped ClipDispatch.
func (b *Battery) ApplyDispatch(setpointKW, dtHours float64) float64 {
	actualKW := b.ClipDispatch(setpointKW, dtHours)

	var deltaKWh float64
	if actualKW > 0 {
		deltaKWh = actualKW * b.Params.EtaCharge * dtHours
	} else if actualKW < 0 {
		deltaKWh = actualKW * dtHours / b.Params.EtaDischarge
	}

	b.State.SOC = clamp01(b.State.SOC + deltaKWh/b.Params.CapacityKWh)
	return actualKW
}
