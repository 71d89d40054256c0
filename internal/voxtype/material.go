package voxtype

// Material is either a MaterialV1 (MATT) or a MaterialV2 (MATL).
type Material interface {
	MaterialID() uint32
	isMaterial()
}

// MaterialKind is the MATT surface type.
type MaterialKind uint32

const (
	MaterialDiffuse MaterialKind = iota
	MaterialMetal
	MaterialGlass
	MaterialEmissive
)

// String returns the human-readable name of the material kind.
func (k MaterialKind) String() string {
	switch k {
	case MaterialDiffuse:
		return "diffuse"
	case MaterialMetal:
		return "metal"
	case MaterialGlass:
		return "glass"
	case MaterialEmissive:
		return "emissive"
	default:
		return "unknown"
	}
}

// MATT property bits. Bits 0-6 each gate one float field, in this order.
const (
	PropPlastic uint32 = 1 << iota
	PropRoughness
	PropSpecular
	PropIOR
	PropAttenuation
	PropPower
	PropGlow
	PropTotalPower
)

// MaterialV1 is a legacy MATT material.
//
// Optional properties are nil when their bit is clear in the property mask.
type MaterialV1 struct {
	ID   uint32
	Kind MaterialKind

	// Weight is 1.0 for diffuse; for the other kinds it blends between the
	// kind and diffuse in (0.0, 1.0].
	Weight float32

	Plastic     *float32
	Roughness   *float32
	Specular    *float32
	IOR         *float32
	Attenuation *float32
	Power       *float32
	Glow        *float32

	IsTotalPower bool
}

// MaterialID returns the material id.
func (m MaterialV1) MaterialID() uint32 { return m.ID }

func (MaterialV1) isMaterial() {}

// MaterialV2 is a MATL material with free-form properties such as _type,
// _weight, _rough, and _ior.
type MaterialV2 struct {
	ID         uint32
	Properties Dict
}

// MaterialID returns the material id.
func (m MaterialV2) MaterialID() uint32 { return m.ID }

func (MaterialV2) isMaterial() {}

// Type returns the _type property.
func (m MaterialV2) Type() (string, bool) {
	return m.Properties.Get("_type")
}
