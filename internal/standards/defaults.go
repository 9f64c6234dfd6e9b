package standards

// Defaults returns the built-in drinking-water standards, based on WHO
// guideline values. The first entry is the default staged parameter.
func Defaults() []Standard {
	return []Standard{
		{Name: "pH", Category: CategoryPhysical, Min: bound(6.5), Max: bound(8.5),
			Remedy: "Adjust pH: lime or soda ash dosing when low, acid or CO2 dosing when high."},
		{Name: "Turbidity", Unit: "NTU", Category: CategoryPhysical, Max: bound(5),
			Remedy: "Coagulation-flocculation, sedimentation and rapid sand filtration."},
		{Name: "Total Dissolved Solids", Unit: "mg/L", Category: CategoryPhysical, Max: bound(1000),
			Remedy: "Reverse osmosis or blending with a low-salinity source."},
		{Name: "Colour", Unit: "TCU", Category: CategoryPhysical, Max: bound(15),
			Remedy: "Coagulation followed by activated carbon adsorption."},
		{Name: "Electrical Conductivity", Unit: "uS/cm", Category: CategoryPhysical, Max: bound(1500),
			Remedy: "Reverse osmosis or ion exchange."},
		{Name: "Total Hardness", Unit: "mg/L CaCO3", Category: CategoryChemical, Max: bound(500),
			Remedy: "Lime-soda softening or ion exchange."},
		{Name: "Chloride", Unit: "mg/L", Category: CategoryChemical, Max: bound(250),
			Remedy: "Reverse osmosis or electrodialysis."},
		{Name: "Sulfate", Unit: "mg/L", Category: CategoryChemical, Max: bound(250),
			Remedy: "Reverse osmosis or ion exchange."},
		{Name: "Nitrate", Unit: "mg/L", Category: CategoryChemical, Max: bound(50),
			Remedy: "Ion exchange or biological denitrification; protect the source from fertiliser run-off."},
		{Name: "Fluoride", Unit: "mg/L", Category: CategoryChemical, Max: bound(1.5),
			Remedy: "Defluoridation with activated alumina or bone char."},
		{Name: "Iron", Unit: "mg/L", Category: CategoryChemical, Max: bound(0.3),
			Remedy: "Aeration followed by filtration (oxidation-precipitation)."},
		{Name: "Manganese", Unit: "mg/L", Category: CategoryChemical, Max: bound(0.4),
			Remedy: "Oxidation with chlorine or permanganate and greensand filtration."},
		{Name: "Arsenic", Unit: "mg/L", Category: CategoryChemical, Max: bound(0.01),
			Remedy: "Coagulation with ferric salts, adsorptive media or reverse osmosis."},
		{Name: "Lead", Unit: "mg/L", Category: CategoryChemical, Max: bound(0.01),
			Remedy: "Replace lead service lines, apply corrosion control, use point-of-use filters."},
		{Name: "Residual Chlorine", Unit: "mg/L", Category: CategoryChemical, Min: bound(0.2), Max: bound(5),
			Remedy: "Adjust the chlorine dose to keep a free residual between 0.2 and 5 mg/L."},
		{Name: "E. coli", Unit: "CFU/100mL", Category: CategoryMicrobiological, Max: bound(0),
			Remedy: "Disinfect (chlorination or UV) and inspect the source for faecal contamination."},
		{Name: "Total Coliforms", Unit: "CFU/100mL", Category: CategoryMicrobiological, Max: bound(0),
			Remedy: "Disinfect and flush the distribution system."},
	}
}
