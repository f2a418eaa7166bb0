package funcell

import (
	"fmt"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/funcell/funcell/internal/cell"
	"github.com/funcell/funcell/internal/refl"
	"go.uber.org/zap"
)

// Profile binds a Config to a type. A profile is usually an empty struct
// that embeds the grants matching its Config:
//
//	type Tasks struct {
//		funcell.AllowMove
//		funcell.AllowEmpty
//	}
//
//	func (Tasks) FuncConfig() funcell.Config {
//		cfg := funcell.DefaultConfig()
//		cfg.Copyable = false
//		cfg.CanBeEmpty = true
//		cfg.CheckEmpty = true
//		return cfg
//	}
//
// FuncConfig must be pure and must use a value receiver. The profile is
// registered and validated on first use; a grant that disagrees with the
// returned Config panics at that point.
type Profile interface {
	FuncConfig() Config
}

type grant struct{}

// AllowCopy grants the copy operations (Copy, CopyInto) when embedded into
// a profile. The profile's Config must set Copyable.
type AllowCopy struct{}

func (AllowCopy) grantCopy(grant) {}

// AllowMove grants the move operations (Move, MoveInto, Swap) when embedded
// into a profile. The profile's Config must set Movable.
type AllowMove struct{}

func (AllowMove) grantMove(grant) {}

// AllowEmpty grants empty construction via Empty. The profile's Config must
// set CanBeEmpty.
type AllowEmpty struct{}

func (AllowEmpty) grantEmpty(grant) {}

// AllowTypeInfo grants the introspection operations (TypeOf, Target). The
// profile's Config must set TypeInfo.
type AllowTypeInfo struct{}

func (AllowTypeInfo) grantTypeInfo(grant) {}

// AllowConstCall grants CallShared. The profile's Config must set
// ConstCall.
type AllowConstCall struct{}

func (AllowConstCall) grantConstCall(grant) {}

// CopyProfile is satisfied by profiles embedding AllowCopy.
type CopyProfile interface {
	Profile
	grantCopy(grant)
}

// MoveProfile is satisfied by profiles embedding AllowMove.
type MoveProfile interface {
	Profile
	grantMove(grant)
}

// EmptyProfile is satisfied by profiles embedding AllowEmpty.
type EmptyProfile interface {
	Profile
	grantEmpty(grant)
}

// TypeInfoProfile is satisfied by profiles embedding AllowTypeInfo.
type TypeInfoProfile interface {
	Profile
	grantTypeInfo(grant)
}

// ConstCallProfile is satisfied by profiles embedding AllowConstCall.
type ConstCallProfile interface {
	Profile
	grantConstCall(grant)
}

type profileInfo struct {
	Name   string
	Config Config

	copyable  bool
	movable   bool
	emptiable bool
	typeInfo  bool
	constCall bool

	// destroyOnly is set when the profile grants neither move, copy nor
	// introspection. The bound dispatcher then degenerates to a plain
	// destroyer whose other branches are unreachable.
	destroyOnly bool
}

var profiles atomic.Pointer[map[unsafe.Pointer]*profileInfo]

func init() {
	// initialize the lookup table
	profiles.Store(&map[unsafe.Pointer]*profileInfo{})
}

func profileOf[P Profile]() *profileInfo {
	ty := reflect.TypeFor[P]()
	key := refl.AbiTypePointer(ty)

	if cached, ok := (*profiles.Load())[key]; ok {
		return cached
	}

	return registerProfile[P](key, ty)
}

func registerProfile[P Profile](key unsafe.Pointer, ty reflect.Type) *profileInfo {
	var zero P

	info := &profileInfo{
		Name:   ty.String(),
		Config: zero.FuncConfig(),
	}

	_, info.copyable = any(zero).(interface{ grantCopy(grant) })
	_, info.movable = any(zero).(interface{ grantMove(grant) })
	_, info.emptiable = any(zero).(interface{ grantEmpty(grant) })
	_, info.typeInfo = any(zero).(interface{ grantTypeInfo(grant) })
	_, info.constCall = any(zero).(interface{ grantConstCall(grant) })

	info.destroyOnly = !info.movable && !info.copyable && !info.typeInfo

	validateProfile(info)

	for {
		previousProfiles := profiles.Load()
		if cached, ok := (*previousProfiles)[key]; ok {
			return cached
		}

		newProfiles := maps.Clone(*previousProfiles)
		newProfiles[key] = info

		if profiles.CompareAndSwap(previousProfiles, &newProfiles) {
			zap.L().Debug(
				"new func profile registered",
				zap.String("profile", info.Name),
				zap.Uint64("config", info.Config.Hash()),
			)

			return info
		}
	}
}

func validateProfile(info *profileInfo) {
	cfg := info.Config

	if cfg.Capacity > cell.Capacity {
		panic(fmt.Sprintf(
			"profile %s configures %d bytes of inline capacity, the cell holds at most %d",
			info.Name, cfg.Capacity, cell.Capacity,
		))
	}

	if cfg.Alignment == 0 || cfg.Alignment&(cfg.Alignment-1) != 0 {
		panic(fmt.Sprintf("profile %s: alignment %d is not a power of two", info.Name, cfg.Alignment))
	}

	check := func(granted, configured bool, name string) {
		if granted != configured {
			panic(fmt.Sprintf(
				"profile %s: %s grant and Config disagree (grant=%v, config=%v)",
				info.Name, name, granted, configured,
			))
		}
	}

	check(info.copyable, cfg.Copyable, "copy")
	check(info.movable, cfg.Movable, "move")
	check(info.emptiable, cfg.CanBeEmpty, "empty")
	check(info.typeInfo, cfg.TypeInfo, "type info")
	check(info.constCall, cfg.ConstCall, "const call")
}
