package lights

type LightType string

const (
	LightTypePoint LightType = "point"
)
