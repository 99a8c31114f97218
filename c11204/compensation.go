package c11204

// CompensationNote explains how the module applies the temperature correction.
const CompensationNote = `This function performs temperature compensation of the output voltage using the temperature T[°C] of the external temperature sensor.
The output voltage Vo[V] is determined by the following formula:
  Vo = (DT' * (T - Tb)^2 + DT * (T - Tb)) / 1000 + Vb
DT[mV/°C] and DT'[mV/°C²] are the temperature coefficients. The high temperature side uses DT'1 and DT1, the low temperature side uses DT'2 and DT2.
If you don't use this function, set all coefficients to 0.
When the temperature of the sensor deviates significantly, the temperature compensation becomes OFF forcibly and the output voltage is set to the reference voltage Vb[V].`

// OutputVoltage returns the compensated output voltage in V at temperature t in °C.
func (tc TemperatureCorrection) OutputVoltage(t float64) float64 {
	dtp, dt := tc.DTPrime1, tc.DT1
	if t < tc.Tb {
		dtp, dt = tc.DTPrime2, tc.DT2
	}

	d := t - tc.Tb
	return (dtp*d*d+dt*d)/1000 + tc.Vb
}
