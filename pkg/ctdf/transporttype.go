package ctdf

type VehicleCategory string

//goland:noinspection GoUnusedConst
const (
	VehicleCategoryBRT   VehicleCategory = "BRT"
	VehicleCategoryDanfo VehicleCategory = "Danfo"
	VehicleCategoryMolue VehicleCategory = "Molue"
	VehicleCategoryKeke  VehicleCategory = "Keke"
)

func (v VehicleCategory) Valid() bool {
	switch v {
	case VehicleCategoryBRT, VehicleCategoryDanfo, VehicleCategoryMolue, VehicleCategoryKeke:
		return true
	default:
		return false
	}
}
