package device

// Kind tags a device with the class of hardware it represents. The set
// of kinds is closed; each kind carries its own fixed attribute list.
type Kind string

const (
	KindBattery   Kind = "battery"
	KindBacklight Kind = "backlight"
)

// attributeNames returns the sysfs attribute files sampled for the
// kind. The order is significant: it is the column order of log
// records and must not change between releases.
func (k Kind) attributeNames() []string {
	switch k {
	case KindBattery:
		return []string{
			"capacity",
			"cycle_count",
			"energy_full",
			"energy_full_design",
			"energy_now",
			"power_now",
			"present",
			"status",
			"voltage_min_design",
			"voltage_now",
		}
	case KindBacklight:
		return []string{
			"brightness",
			"max_brightness",
		}
	default:
		return nil
	}
}
