package tbbx

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	//ErrInvalidOID malformed dotted-decimal object identifier
	ErrInvalidOID = errors.New("invalid extension OID")
	//ErrUnknownAlias alias target has not been registered
	ErrUnknownAlias = errors.New("unknown alias target")
	//ErrConflictingExtension OID already registered with a different descriptor
	ErrConflictingExtension = errors.New("conflicting extension registration")
	//ErrUnknownExtension OID not present in the registry
	ErrUnknownExtension = errors.New("unknown extension")
)

//ValueType ASN.1 value type carried by a custom extension
type ValueType uint8

const (
	//UnknownValue unknown or not set; no conversion methods are installed and
	//values print via the raw fallback dump
	UnknownValue ValueType = iota
	//Integer ASN.1 INTEGER
	Integer
	//OctetString ASN.1 OCTET STRING
	OctetString

	valueTypeMax
)

func (v ValueType) String() string {
	switch v {
	case Integer:
		return "INTEGER"
	case OctetString:
		return "OCTET STRING"
	default:
		return "unknown"
	}
}

//Descriptor build-time description of a single custom extension. Alias, when
//set, names the OID of an already-registered extension whose conversion
//methods are reused; Type is consulted only when Alias is empty
type Descriptor struct {
	OID       string
	ShortName string
	LongName  string
	Alias     string
	Type      ValueType
}

//NID process-local numeric id assigned to a registered extension OID
type NID int

//Registration a single registered extension binding
type Registration struct {
	NID       NID
	OID       asn1.ObjectIdentifier
	ShortName string
	LongName  string

	desc   Descriptor
	method *Method
}

//Type the ASN.1 value type the extension was declared with
func (r *Registration) Type() ValueType {
	return r.desc.Type
}

//Aliased whether the registration reuses another extension's methods
func (r *Registration) Aliased() bool {
	return r.desc.Alias != ""
}

//Registry catalog of custom extension OIDs and their string conversion
//methods. A registry is written once via Register during startup and is
//read-only afterwards; Register must complete before the registry is shared
//between goroutines
type Registry struct {
	byOID   map[string]*Registration
	byNID   map[NID]*Registration
	nextNID NID
}

//NewRegistry creates an empty extension registry
func NewRegistry() *Registry {
	return &Registry{
		byOID:   make(map[string]*Registration),
		byNID:   make(map[NID]*Registration),
		nextNID: 1,
	}
}

//NewTBBRegistry creates a registry preloaded with the TBBR extension catalog
func NewTBBRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := r.Register(Table()); err != nil {
		return nil, err
	}

	return r, nil
}

//Register adds descriptors to the registry in order. Registration stops at
//the first failing descriptor; entries registered before it remain in place.
//Re-registering an identical descriptor is a no-op
func (r *Registry) Register(descs []Descriptor) error {
	for _, d := range descs {
		if _, err := r.register(d); err != nil {
			return fmt.Errorf("registering %s: %w", d.OID, err)
		}
	}

	return nil
}

func (r *Registry) register(d Descriptor) (*Registration, error) {
	if existing, ok := r.byOID[d.OID]; ok {
		if existing.desc != d {
			return nil, ErrConflictingExtension
		}
		return existing, nil
	}

	oid, err := parseOID(d.OID)
	if err != nil {
		return nil, err
	}

	reg := &Registration{
		NID:       r.nextNID,
		OID:       oid,
		ShortName: d.ShortName,
		LongName:  d.LongName,
		desc:      d,
	}

	if d.Alias != "" {
		target, ok := r.byOID[d.Alias]
		if !ok {
			return nil, fmt.Errorf("%s: %w", d.Alias, ErrUnknownAlias)
		}
		reg.method = target.method
	} else {
		reg.method = methodFor(d.Type)
	}

	r.byOID[d.OID] = reg
	r.byNID[reg.NID] = reg
	r.nextNID++

	return reg, nil
}

//Lookup finds a registration by its dotted-decimal OID
func (r *Registry) Lookup(oid string) (*Registration, bool) {
	reg, ok := r.byOID[oid]
	return reg, ok
}

//LookupNID finds a registration by its numeric id
func (r *Registry) LookupNID(nid NID) (*Registration, bool) {
	reg, ok := r.byNID[nid]
	return reg, ok
}

//Registered lists all registrations in registration order
func (r *Registry) Registered() []*Registration {
	regs := make([]*Registration, 0, len(r.byNID))
	for nid := NID(1); nid < r.nextNID; nid++ {
		if reg, ok := r.byNID[nid]; ok {
			regs = append(regs, reg)
		}
	}

	return regs
}

func parseOID(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%s: %w", s, ErrInvalidOID)
	}

	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		arc, err := strconv.Atoi(p)
		if err != nil || arc < 0 {
			return nil, fmt.Errorf("%s: %w", s, ErrInvalidOID)
		}
		oid[i] = arc
	}

	return oid, nil
}
