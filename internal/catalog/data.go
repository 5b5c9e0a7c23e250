package catalog

import "github.com/sakif/vin-lookup/internal/model"

// variantDef couples a catalog variant with the label shown in the engine
// dropdown. The label is data, not derived — "2.0 TiD (A20DTH)" includes the
// engine code while "2.0 TDI" does not.
type variantDef struct {
	label   string
	variant model.VehicleVariant
}

func cost(low, high int) *model.CostRange {
	return &model.CostRange{Low: low, High: high}
}

// variantDefs is the entire catalog. Defined exactly once — this is the
// canonical dataset the whole application reads from.
var variantDefs = []variantDef{
	{
		label: "2.0 TiD (A20DTH)",
		variant: model.VehicleVariant{
			ID:         "saab95-a20dth",
			Make:       "Saab",
			Model:      "9-5",
			YearFrom:   2010,
			YearTo:     2012,
			Engine:     "2.0 TiD",
			EngineCode: "A20DTH",
			Fuel:       "Diesel",
			Issues: []model.Issue{
				// ===== OIL / PRESSURE =====
				{
					ID:       "oil-pickup-seal",
					Title:    "Lavt olietryk (oil pickup seal / O-ring)",
					Severity: model.SeverityCritical,
					Tags:     []string{"olie", "motorlampe", "lyde"},
					Symptoms: []string{
						"Olietryk-advarsel (ofte ved koldstart)",
						"Kort raslen/lejetik de første sekunder",
						"Kan være OK varm men dårlig kold",
					},
					TypicalFix: "Sump af: skift pickup O-ring/seal, rens pickup og slam i bund. Brug korrekt del og olie+filter bagefter.",
					CostDkk:    cost(2500, 8000),
				},
				{
					ID:       "sump-sludge",
					Title:    "Slam/tilstopning i sump og pickup",
					Severity: model.SeverityCritical,
					Tags:     []string{"olie", "motorlampe", "lyde"},
					Symptoms: []string{
						"Olietryk-alarmer",
						"Turbo-/lejestøj over tid",
						"Meget sort/sodet olie og aflejringer",
					},
					TypicalFix: "Sump af + grundig rens af pickup/si og oliekanaler. Forkort olieinterval fremover.",
					CostDkk:    cost(3000, 9000),
				},
				{
					ID:       "oil-pressure-sensor",
					Title:    "Olietryksensor fejl / falske olietryk-alarmer",
					Severity: model.SeverityMedium,
					Tags:     []string{"olie", "motorlampe", "elektrisk"},
					Symptoms: []string{
						"Olietryk-advarsel uden tydelig mekanisk støj",
						"Kommer ved bestemt temperatur/RPM",
					},
					TypicalFix: "Mål mekanisk olietryk først. Hvis tryk er OK: skift sensor/stik/ledning.",
					CostDkk:    cost(500, 3000),
				},

				// ===== DPF / EGR / INTAKE =====
				{
					ID:       "dpf-clog",
					Title:    "DPF tilstoppet / mislykkede regenereringer",
					Severity: model.SeverityHigh,
					Tags:     []string{"motorlampe", "træk", "røg", "udstødning"},
					Symptoms: []string{
						"Nødløb / manglende træk",
						"Hyppige regenereringer / høj tomgang efter kørsel",
						"Stigende olie-niveau (diesel i olie)",
						"Advarsler om partikelfilter / service",
					},
					TypicalFix: "Diagnose med live-data (differenstryk/temp), tvangsregen eller filterrens. Løs rodårsag (korte ture, sensorer, EGR).",
					CostDkk:    cost(1500, 14000),
				},
				{
					ID:       "egr",
					Title:    "EGR soder til",
					Severity: model.SeverityMedium,
					Tags:     []string{"motorlampe", "tomgang", "røg", "træk"},
					Symptoms: []string{
						"Ujævn tomgang",
						"Nødløb",
						"Tøven ved gas",
						"Sort røg ved belastning",
					},
					TypicalFix: "Rens/udskift EGR og tjek EGR-køler/kanaler for tilstopning.",
					CostDkk:    cost(1500, 6500),
				},
				{
					ID:       "swirl-flaps",
					Title:    "Swirl flaps/arm i indsugning (arm falder af / klapper binder)",
					Severity: model.SeverityHigh,
					Tags:     []string{"motorlampe", "træk", "tomgang"},
					Symptoms: []string{
						"Dårlig bundtræk",
						"Fejl/advarsler",
						"Nødløb på nogle biler",
						"Ujævn motorgang ved bestemte belastninger",
					},
					TypicalFix: "Reparer/udskift indsugningsmanifold eller swirl-komponenter afhængigt af skade. Kontroller samtidig sod i indsugning.",
					CostDkk:    cost(3000, 12000),
				},
				{
					ID:       "map-sensor-soot",
					Title:    "MAP-sensor/indsugning soder til (forkert boost/luftdata)",
					Severity: model.SeverityMedium,
					Tags:     []string{"motorlampe", "træk", "røg", "sensor"},
					Symptoms: []string{
						"Tøven ved speeder",
						"Ujævnt træk",
						"Underboost/overboost-fejl",
						"Sort røg",
					},
					TypicalFix: "Rens MAP-sensor, indsugningskanaler og tjek for olie/sod. Kontroller også trykrør og intercooler.",
					CostDkk:    cost(300, 3500),
				},
				{
					ID:       "boost-leak",
					Title:    "Boost-læk (intercooler/trykrør/slange-samlinger)",
					Severity: model.SeverityMedium,
					Tags:     []string{"træk", "røg", "lyde"},
					Symptoms: []string{
						"Hvæsen under load",
						"Oliesved ved trykrør",
						"Manglende træk ved acceleration",
						"Nødløb ved overhaling",
					},
					TypicalFix: "Tryktest systemet, skift revnede slanger/intercooler, nye O-ringe/klemmer hvor nødvendigt.",
					CostDkk:    cost(800, 6500),
				},
				{
					ID:       "vacuum-control",
					Title:    "Vakuumslanger/booststyring (magnetventil/actuator) fejl",
					Severity: model.SeverityHigh,
					Tags:     []string{"træk", "motorlampe", "lyde", "vakuum"},
					Symptoms: []string{
						"Ustabilt boost",
						"Ryk ved acceleration",
						"Nødløb",
						"Summen/brummen fra vakuumventil efter stop",
					},
					TypicalFix: "Tjek vakuum med håndpumpe, udskift porøse slanger, test/udskift magnetventil og kontroller actuator bevægelse.",
					CostDkk:    cost(800, 8000),
				},
				{
					ID:       "maf-sensor",
					Title:    "MAF (luftmængdemåler) fejl / forkerte luftdata",
					Severity: model.SeverityMedium,
					Tags:     []string{"motorlampe", "træk", "sensor"},
					Symptoms: []string{
						"Dårligt træk",
						"Tøven",
						"Ujævn respons",
						"Nødløb i perioder",
					},
					TypicalFix: "Test via live-data (g/s) og prøv evt. kendt god MAF. Tjek også utætheder i indsugning.",
					CostDkk:    cost(700, 3500),
				},

				// ===== FUEL / INJECTORS =====
				{
					ID:       "fuel-pressure-control",
					Title:    "Railtryk-ustabilitet (trykregulator/IMV/SCV) → ujævn tomgang",
					Severity: model.SeverityMedium,
					Tags:     []string{"tomgang", "start", "motorlampe", "brændstof"},
					Symptoms: []string{
						"Omdrejninger 'jager' (især varm/kold overgang)",
						"Tøven ved speeder",
						"Kan dø efter kort tid ved ustabil regulering",
					},
					TypicalFix: "Læs railtryk ønsket/aktuelt i live-data. Rens/udskift regulator/ventil efter måling (ikke gæt).",
					CostDkk:    cost(1500, 7000),
				},
				{
					ID:       "injector-leakoff",
					Title:    "Injektor returflow / utætte kobberpakninger (blow-by)",
					Severity: model.SeverityHigh,
					Tags:     []string{"start", "tomgang", "brændstof", "røg"},
					Symptoms: []string{
						"Dårlig start varm/kold",
						"Diesellugt",
						"Ujævn gang",
						"Sort tjære omkring injektorer",
					},
					TypicalFix: "Returflow-test. Skift kobberpakninger/bolte og rens sæder. Ved behov: renover/udskift injektor.",
					CostDkk:    cost(1500, 15000),
				},

				// ===== START / GLOW =====
				{
					ID:       "glow-plugs",
					Title:    "Gløderør / gløderørsmodul",
					Severity: model.SeverityMedium,
					Tags:     []string{"start", "motorlampe", "elektrisk"},
					Symptoms: []string{
						"Lang koldstart",
						"Ryster når kold",
						"Hvid/grå røg ved koldstart",
						"Glødelampe/fejl",
					},
					TypicalFix: "Mål gløderør, skift defekte gløderør og evt. gløderørsstyring.",
					CostDkk:    cost(1200, 5500),
				},
				{
					ID:       "battery-low-voltage",
					Title:    "Lav spænding / dårligt batteri → mærkelige fejl og ustabil drift",
					Severity: model.SeverityMedium,
					Tags:     []string{"elektrisk", "start", "motorlampe"},
					Symptoms: []string{
						"Mange tilfældige fejl",
						"Dårlig start",
						"Moduler opfører sig mærkeligt",
						"Spænding falder ved belastning",
					},
					TypicalFix: "Load-test batteri, tjek generator-ladespænding, rens poler og stel.",
					CostDkk:    cost(800, 3500),
				},

				// ===== COOLING =====
				{
					ID:       "thermostat",
					Title:    "Termostat fejl (motor kører for koldt/varmt)",
					Severity: model.SeverityLow,
					Tags:     []string{"kølervæske", "temperatur"},
					Symptoms: []string{
						"Lang opvarmning",
						"Lav driftstemperatur",
						"Svingende temperatur",
						"Øget forbrug hvis for kold",
					},
					TypicalFix: "Skift termostat og luft kølesystem korrekt ud.",
					CostDkk:    cost(1000, 4000),
				},
				{
					ID:       "coolant-temp-sensor",
					Title:    "Kølervæske-temp sensor (ECT) fejl → forkert temp/regen/forbrug",
					Severity: model.SeverityMedium,
					Tags:     []string{"kølervæske", "sensor", "motorlampe"},
					Symptoms: []string{
						"Forkert temp-visning",
						"Dårlig koldstart/forbrug",
						"Regenerering opfører sig underligt",
					},
					TypicalFix: "Læs temp i live-data, sammenlign med realtemp. Skift sensor/stik hvis afvigelse.",
					CostDkk:    cost(400, 2500),
				},
				{
					ID:       "water-pump",
					Title:    "Vandpumpe læk/defekt (tandrem-side)",
					Severity: model.SeverityHigh,
					Tags:     []string{"kølervæske", "lyde", "temperatur"},
					Symptoms: []string{
						"Kølervæsketab",
						"Fugt ved pumpe",
						"Hvin/rumlen fra remside",
						"Overophedning",
					},
					TypicalFix: "Skift vandpumpe sammen med tandremssæt (strammer/løbere).",
					CostDkk:    cost(4000, 11000),
				},
				{
					ID:       "timing-belt",
					Title:    "Tandrem/strammer/løberhjul overskredet service",
					Severity: model.SeverityCritical,
					Tags:     []string{"lyde", "service"},
					Symptoms: []string{
						"Mislyde fra remside",
						"Ujævn gang",
						"Risiko for motorstop hvis rem hopper/knækker",
					},
					TypicalFix: "Skift tandremssæt + vandpumpe efter interval/historik. Køb ikke 'billigste kit'.",
					CostDkk:    cost(4500, 13000),
				},

				// ===== OIL/WATER MIX =====
				{
					ID:       "oil-cooler-gaskets",
					Title:    "Oliekøler/oliehus-pakninger (olie og kølervand blander sig)",
					Severity: model.SeverityHigh,
					Tags:     []string{"olie", "kølervæske", "motorlampe"},
					Symptoms: []string{
						"Olie i ekspansionsbeholder",
						"Kølervæske misfarvet",
						"Kølervæsketab eller olieforbrug",
					},
					TypicalFix: "Trykprøv og udeluk toppakning. Skift pakninger/komponent efter korrekt diagnose og skyl kølesystem.",
					CostDkk:    cost(2500, 9500),
				},

				// ===== PCV / LEAKS =====
				{
					ID:       "pcv-leaks",
					Title:    "PCV/krumtapsudluftning utæt → olieforbrug/oliesved",
					Severity: model.SeverityLow,
					Tags:     []string{"olie", "tomgang"},
					Symptoms: []string{
						"Oliesved ved slanger",
						"Olie i indsugning",
						"Hvæsen/utæthed",
					},
					TypicalFix: "Udskift sprøde slanger/ventiler, tjek tæthed og korrekt routing.",
					CostDkk:    cost(300, 2500),
				},

				// ===== DRIVELINE =====
				{
					ID:       "dmf-wear",
					Title:    "DMF (dobbeltmassesvinghjul) slidt → vibration/klonk",
					Severity: model.SeverityHigh,
					Tags:     []string{"gear", "lyde", "vibration"},
					Symptoms: []string{
						"Klonk/raslen i tomgang",
						"Vibration ved igangsætning",
						"Lyden ændrer sig når du træder kobling",
					},
					TypicalFix: "Bekræft lyd/vibration. Skift DMF + kobling hvis slidt.",
					CostDkk:    cost(7000, 18000),
				},
				{
					ID:       "engine-mounts",
					Title:    "Motorophæng slidt → rystelser i kabinen",
					Severity: model.SeverityMedium,
					Tags:     []string{"vibration", "lyde"},
					Symptoms: []string{
						"Rystelser i tomgang",
						"Dunk ved gearskift",
						"Mere vibration ved belastning",
					},
					TypicalFix: "Tjek øvre/nedre motorophæng. Skift de defekte ophæng.",
					CostDkk:    cost(1500, 8000),
				},

				// ===== ELECTRICAL / SENSORS =====
				{
					ID:       "crank-sensor",
					Title:    "Krumtapsføler (CKP) fejl → kan stoppe / svært at starte",
					Severity: model.SeverityHigh,
					Tags:     []string{"start", "motorlampe", "sensor", "elektrisk"},
					Symptoms: []string{
						"Kan gå ud pludseligt",
						"Svær at starte varm",
						"Ujævn drift uden klare mønstre",
					},
					TypicalFix: "Læs fejl/livedata. Skift CKP ved tydelige udfald (ikke gæt).",
					CostDkk:    cost(900, 4500),
				},
			},
		},
	},
	{
		label: "2.0T (B207)",
		variant: model.VehicleVariant{
			ID:         "saab93-b207",
			Make:       "Saab",
			Model:      "9-3",
			YearFrom:   2007,
			YearTo:     2009,
			Engine:     "2.0T",
			EngineCode: "B207",
			Fuel:       "Benzin",
			Issues: []model.Issue{
				{
					ID:       "pcv",
					Title:    "PCV/krumtapsudluftning problemer",
					Severity: model.SeverityMedium,
					Tags:     []string{"olie", "tomgang"},
					Symptoms: []string{
						"Olieforbrug",
						"Oliesved",
						"Ujævn tomgang",
					},
					TypicalFix: "Tjek PCV-system, slanger og ventiler",
					CostDkk:    cost(800, 3000),
				},
			},
		},
	},
	{
		label: "2.0 TDI",
		variant: model.VehicleVariant{
			ID:         "golf-2.0tdi",
			Make:       "VW",
			Model:      "Golf",
			YearFrom:   2017,
			YearTo:     2019,
			Engine:     "2.0 TDI",
			EngineCode: "EA288",
			Fuel:       "Diesel",
			Issues: []model.Issue{
				{
					ID:       "dpf",
					Title:    "DPF regenereringsproblemer ved korte ture",
					Severity: model.SeverityMedium,
					Tags:     []string{"motorlampe", "udstødning", "røg"},
					Symptoms: []string{
						"DPF-lampe",
						"Hyppig regenerering",
						"Høj tomgang efter kørsel",
					},
					TypicalFix: "Længere motorvejsture + diagnose af sensorer",
					CostDkk:    cost(1000, 8000),
				},
			},
		},
	},
}
