/*
Copyright © 2024 the OpenFF Units authors.
This file is part of OpenFF Units.

OpenFF Units is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OpenFF Units is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OpenFF Units.  If not, see <http://www.gnu.org/licenses/>.
*/

package mmunit

import (
	"math"
	"sort"
)

// Base units.
var (
	kilogramBase  = NewBaseUnit(MassDimension, "kilogram", "kg", 1)
	gramBase      = NewBaseUnit(MassDimension, "gram", "g", 1e-3)
	milligramBase = NewBaseUnit(MassDimension, "milligram", "mg", 1e-6)

	meterBase      = NewBaseUnit(LengthDimension, "meter", "m", 1)
	centimeterBase = NewBaseUnit(LengthDimension, "centimeter", "cm", 1e-2)
	millimeterBase = NewBaseUnit(LengthDimension, "millimeter", "mm", 1e-3)
	micrometerBase = NewBaseUnit(LengthDimension, "micrometer", "um", 1e-6)
	nanometerBase  = NewBaseUnit(LengthDimension, "nanometer", "nm", 1e-9)
	angstromBase   = NewBaseUnit(LengthDimension, "angstrom", "Å", 1e-10)
	picometerBase  = NewBaseUnit(LengthDimension, "picometer", "pm", 1e-12)
	bohrBase       = NewBaseUnit(LengthDimension, "bohr", "a0", 5.29177210903e-11)

	secondBase      = NewBaseUnit(TimeDimension, "second", "s", 1)
	millisecondBase = NewBaseUnit(TimeDimension, "millisecond", "ms", 1e-3)
	microsecondBase = NewBaseUnit(TimeDimension, "microsecond", "us", 1e-6)
	nanosecondBase  = NewBaseUnit(TimeDimension, "nanosecond", "ns", 1e-9)
	picosecondBase  = NewBaseUnit(TimeDimension, "picosecond", "ps", 1e-12)
	femtosecondBase = NewBaseUnit(TimeDimension, "femtosecond", "fs", 1e-15)
	minuteBase      = NewBaseUnit(TimeDimension, "minute", "min", 60)
	hourBase        = NewBaseUnit(TimeDimension, "hour", "hr", 3600)
	dayBase         = NewBaseUnit(TimeDimension, "day", "day", 86400)

	kelvinBase = NewBaseUnit(TemperatureDimension, "kelvin", "K", 1)

	moleBase = NewBaseUnit(AmountDimension, "mole", "mol", 1)

	coulombBase          = NewBaseUnit(ChargeDimension, "coulomb", "C", 1)
	elementaryChargeBase = NewBaseUnit(ChargeDimension, "elementary charge", "e", 1.602176634e-19)

	candelaBase = NewBaseUnit(LuminousIntensityDimension, "candela", "cd", 1)

	radianBase = NewBaseUnit(AngleDimension, "radian", "rad", 1)
	degreeBase = NewBaseUnit(AngleDimension, "degree", "deg", math.Pi/180)
)

// Commonly used units.
var (
	Kilogram  = FromBase(kilogramBase)
	Gram      = FromBase(gramBase)
	Milligram = FromBase(milligramBase)

	Meter      = FromBase(meterBase)
	Centimeter = FromBase(centimeterBase)
	Millimeter = FromBase(millimeterBase)
	Micrometer = FromBase(micrometerBase)
	Nanometer  = FromBase(nanometerBase)
	Angstrom   = FromBase(angstromBase)
	Picometer  = FromBase(picometerBase)
	Bohr       = FromBase(bohrBase)

	Second      = FromBase(secondBase)
	Millisecond = FromBase(millisecondBase)
	Microsecond = FromBase(microsecondBase)
	Nanosecond  = FromBase(nanosecondBase)
	Picosecond  = FromBase(picosecondBase)
	Femtosecond = FromBase(femtosecondBase)
	Minute      = FromBase(minuteBase)
	Hour        = FromBase(hourBase)
	Day         = FromBase(dayBase)

	Kelvin           = FromBase(kelvinBase)
	Mole             = FromBase(moleBase)
	Coulomb          = FromBase(coulombBase)
	ElementaryCharge = FromBase(elementaryChargeBase)
	Candela          = FromBase(candelaBase)
	Radian           = FromBase(radianBase)
	Degree           = FromBase(degreeBase)

	energy = Kilogram.Mul(Meter.Pow(2)).Div(Second.Pow(2))

	Joule       = FromScaled(NewScaledUnit(1, energy, "joule", "J"))
	Kilojoule   = FromScaled(NewScaledUnit(1e3, energy, "kilojoule", "kJ"))
	Calorie     = FromScaled(NewScaledUnit(4.184, energy, "calorie", "cal"))
	Kilocalorie = FromScaled(NewScaledUnit(4184, energy, "kilocalorie", "kcal"))
	Erg         = FromScaled(NewScaledUnit(1e-7, energy, "erg", "erg"))
	Hartree     = FromScaled(NewScaledUnit(4.3597447222071e-18, energy, "hartree", "Eh"))

	Newton     = FromScaled(NewScaledUnit(1, Kilogram.Mul(Meter).Div(Second.Pow(2)), "newton", "N"))
	Pascal     = FromScaled(NewScaledUnit(1, Kilogram.Div(Meter).Div(Second.Pow(2)), "pascal", "Pa"))
	Bar        = FromScaled(NewScaledUnit(1e5, Kilogram.Div(Meter).Div(Second.Pow(2)), "bar", "bar"))
	Atmosphere = FromScaled(NewScaledUnit(101325, Kilogram.Div(Meter).Div(Second.Pow(2)), "atmosphere", "atm"))
	Watt       = FromScaled(NewScaledUnit(1, energy.Div(Second), "watt", "W"))
	Hertz      = FromScaled(NewScaledUnit(1, Second.Pow(-1), "hertz", "Hz"))
	Ampere     = FromScaled(NewScaledUnit(1, Coulomb.Div(Second), "ampere", "A"))
	Volt       = FromScaled(NewScaledUnit(1, energy.Div(Coulomb), "volt", "V"))
	Liter      = FromScaled(NewScaledUnit(1e-3, Meter.Pow(3), "liter", "L"))
	Milliliter = FromScaled(NewScaledUnit(1e-6, Meter.Pow(3), "milliliter", "mL"))
	Debye      = FromScaled(NewScaledUnit(3.33564e-30, Coulomb.Mul(Meter), "debye", "D"))

	// Dalton is the atomic mass unit, which the toolkit treats as gram/mole.
	Dalton = FromScaled(NewScaledUnit(1, Gram.Div(Mole), "dalton", "Da"))

	KilojoulePerMole   = Kilojoule.Div(Mole)
	KilocaloriePerMole = Kilocalorie.Div(Mole)
)

// Namespace is a symbol table of named units. It is built once and then
// only read, so it is safe for concurrent use.
type Namespace struct {
	units map[string]*Unit
}

// NewNamespace returns the default namespace of the toolkit.
func NewNamespace() *Namespace {
	return &Namespace{units: map[string]*Unit{
		"dimensionless": Dimensionless,

		"kilogram":  Kilogram,
		"kilograms": Kilogram,
		"gram":      Gram,
		"grams":     Gram,
		"milligram": Milligram,
		"dalton":    Dalton,
		"daltons":   Dalton,
		"amu":       Dalton,

		"meter":       Meter,
		"meters":      Meter,
		"centimeter":  Centimeter,
		"centimeters": Centimeter,
		"millimeter":  Millimeter,
		"micrometer":  Micrometer,
		"nanometer":   Nanometer,
		"nanometers":  Nanometer,
		"angstrom":    Angstrom,
		"angstroms":   Angstrom,
		"picometer":   Picometer,
		"bohr":        Bohr,

		"second":       Second,
		"seconds":      Second,
		"millisecond":  Millisecond,
		"microsecond":  Microsecond,
		"nanosecond":   Nanosecond,
		"nanoseconds":  Nanosecond,
		"picosecond":   Picosecond,
		"picoseconds":  Picosecond,
		"femtosecond":  Femtosecond,
		"femtoseconds": Femtosecond,
		"minute":       Minute,
		"hour":         Hour,
		"day":          Day,

		"kelvin":            Kelvin,
		"mole":              Mole,
		"moles":             Mole,
		"coulomb":           Coulomb,
		"elementary_charge": ElementaryCharge,
		"candela":           Candela,
		"radian":            Radian,
		"radians":           Radian,
		"degree":            Degree,
		"degrees":           Degree,

		"joule":        Joule,
		"joules":       Joule,
		"kilojoule":    Kilojoule,
		"kilojoules":   Kilojoule,
		"calorie":      Calorie,
		"calories":     Calorie,
		"kilocalorie":  Kilocalorie,
		"kilocalories": Kilocalorie,
		"erg":          Erg,
		"hartree":      Hartree,

		"newton":     Newton,
		"pascal":     Pascal,
		"bar":        Bar,
		"atmosphere": Atmosphere,
		"watt":       Watt,
		"hertz":      Hertz,
		"ampere":     Ampere,
		"volt":       Volt,
		"liter":      Liter,
		"litre":      Liter,
		"milliliter": Milliliter,
		"debye":      Debye,

		"kilojoule_per_mole":    KilojoulePerMole,
		"kilojoules_per_mole":   KilojoulePerMole,
		"kilocalorie_per_mole":  KilocaloriePerMole,
		"kilocalories_per_mole": KilocaloriePerMole,
	}}
}

// Lookup returns the unit with the given symbol name.
func (n *Namespace) Lookup(name string) (*Unit, bool) {
	u, ok := n.units[name]
	return u, ok
}

// With returns a copy of n in which name refers to u.
func (n *Namespace) With(name string, u *Unit) *Namespace {
	o := &Namespace{units: make(map[string]*Unit, len(n.units)+1)}
	for k, v := range n.units {
		o.units[k] = v
	}
	o.units[name] = u
	return o
}

// Names returns the symbol names defined in n, sorted.
func (n *Namespace) Names() []string {
	names := make([]string, 0, len(n.units))
	for k := range n.units {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
