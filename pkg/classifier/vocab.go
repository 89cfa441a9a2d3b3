package classifier

// Fixed voting vocabularies. Terms are matched as lowercase substrings;
// "atom" deliberately appears under both Physics and Chemistry, which the
// strict-max rule resolves (or ties into the fallback).

var mathTerms = []string{
	"mathematics", "math", "algebra", "calculus", "geometry", "trigonometry",
	"function", "derivative", "integral", "limit", "matrix", "vector",
	"equation", "polynomial", "quadratic", "logarithm", "exponential",
	"triangle", "circle", "parabola", "hyperbola", "ellipse", "coordinate",
	"probability", "statistics", "permutation", "combination", "binomial",
}

var physicsTerms = []string{
	"physics", "force", "energy", "wave", "electric", "magnetic", "optics",
	"mechanics", "thermodynamics", "quantum", "atom", "electron", "proton",
	"neutron", "nucleus", "radioactive", "circuit", "current", "voltage",
	"resistance", "capacitor", "inductor", "momentum", "acceleration",
	"velocity", "displacement", "frequency", "wavelength", "amplitude",
	"reflection", "refraction", "lens", "mirror", "prism", "interference",
}

var chemistryTerms = []string{
	"chemistry", "molecule", "atom", "reaction", "compound", "element",
	"acid", "base", "salt", "bond", "organic", "inorganic", "carbon",
	"hydrogen", "oxygen", "nitrogen", "sulfur", "chlorine", "bromine",
	"iodine", "alkali", "metal", "non-metal", "catalyst", "equilibrium",
	"oxidation", "reduction", "electrolysis", "polymer", "isomer",
	"functional group", "alcohol", "ketone", "aldehyde", "ester",
}
