package vehicles

import "ecoroute-service/internal/domain"

// builtinSpecs is the reference table. City/highway figures are L/100km
// (litre-equivalent for electric vehicles).
var builtinSpecs = []domain.VehicleSpec{
	{Make: "Toyota", Model: "Camry", MassKg: 1560, DragCoefficient: 0.28, FrontalAreaM2: 2.24, RollingResistance: 0.01, EngineDisplacement: 2.5, IdleRateLPH: 0.55, BaseConsumptionLKM: 0.072, OptimalSpeedKMH: 80, AccelCostL: 0.012, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 18, HVACLPH: 0.8, CityL100KM: 10.2, HighwayL100KM: 6.7},
	{Make: "Toyota", Model: "Corolla", MassKg: 1355, DragCoefficient: 0.27, FrontalAreaM2: 2.19, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.48, BaseConsumptionLKM: 0.064, OptimalSpeedKMH: 80, AccelCostL: 0.01, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 15, HVACLPH: 0.7, CityL100KM: 9.4, HighwayL100KM: 6.5},
	{Make: "Toyota", Model: "RAV4", MassKg: 1735, DragCoefficient: 0.33, FrontalAreaM2: 2.65, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.72, BaseConsumptionLKM: 0.085, OptimalSpeedKMH: 75, AccelCostL: 0.018, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 22, HVACLPH: 1, CityL100KM: 11.8, HighwayL100KM: 8.7},
	{Make: "Toyota", Model: "Prius", MassKg: 1420, DragCoefficient: 0.24, FrontalAreaM2: 2.16, RollingResistance: 0.009, EngineDisplacement: 1.8, IdleRateLPH: 0.1, BaseConsumptionLKM: 0.042, OptimalSpeedKMH: 85, AccelCostL: 0.006, Efficiency: 0.38, FuelType: domain.FuelHybrid, Category: domain.CategoryHybrid, ColdStartML: 6, RegenFraction: 0.3, HVACLPH: 0.4, CityL100KM: 4.7, HighwayL100KM: 5.3},
	{Make: "Toyota", Model: "Highlander", MassKg: 2041, DragCoefficient: 0.35, FrontalAreaM2: 2.9, RollingResistance: 0.013, EngineDisplacement: 3.5, IdleRateLPH: 0.95, BaseConsumptionLKM: 0.105, OptimalSpeedKMH: 70, AccelCostL: 0.022, Efficiency: 0.23, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 28, HVACLPH: 1.2, CityL100KM: 13.8, HighwayL100KM: 10.2},
	{Make: "Toyota", Model: "Tacoma", MassKg: 1895, DragCoefficient: 0.4, FrontalAreaM2: 3.1, RollingResistance: 0.013, EngineDisplacement: 3.5, IdleRateLPH: 0.9, BaseConsumptionLKM: 0.11, OptimalSpeedKMH: 65, AccelCostL: 0.025, Efficiency: 0.22, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 30, HVACLPH: 1.1, CityL100KM: 14.7, HighwayL100KM: 11.8},
	{Make: "Honda", Model: "Civic", MassKg: 1278, DragCoefficient: 0.28, FrontalAreaM2: 2.19, RollingResistance: 0.01, EngineDisplacement: 1.5, IdleRateLPH: 0.45, BaseConsumptionLKM: 0.06, OptimalSpeedKMH: 80, AccelCostL: 0.009, Efficiency: 0.28, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 14, HVACLPH: 0.65, CityL100KM: 8.9, HighwayL100KM: 6.4},
	{Make: "Honda", Model: "Accord", MassKg: 1498, DragCoefficient: 0.27, FrontalAreaM2: 2.26, RollingResistance: 0.01, EngineDisplacement: 1.5, IdleRateLPH: 0.52, BaseConsumptionLKM: 0.068, OptimalSpeedKMH: 80, AccelCostL: 0.011, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 17, HVACLPH: 0.75, CityL100KM: 9.8, HighwayL100KM: 7.1},
	{Make: "Honda", Model: "CR-V", MassKg: 1590, DragCoefficient: 0.33, FrontalAreaM2: 2.68, RollingResistance: 0.012, EngineDisplacement: 1.5, IdleRateLPH: 0.65, BaseConsumptionLKM: 0.082, OptimalSpeedKMH: 75, AccelCostL: 0.016, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 20, HVACLPH: 0.95, CityL100KM: 11.2, HighwayL100KM: 8.4},
	{Make: "Honda", Model: "Pilot", MassKg: 2005, DragCoefficient: 0.36, FrontalAreaM2: 2.88, RollingResistance: 0.013, EngineDisplacement: 3.5, IdleRateLPH: 0.92, BaseConsumptionLKM: 0.108, OptimalSpeedKMH: 70, AccelCostL: 0.021, Efficiency: 0.23, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 27, HVACLPH: 1.15, CityL100KM: 14.1, HighwayL100KM: 10.7},
	{Make: "Honda", Model: "Ridgeline", MassKg: 1997, DragCoefficient: 0.39, FrontalAreaM2: 3.05, RollingResistance: 0.013, EngineDisplacement: 3.5, IdleRateLPH: 0.88, BaseConsumptionLKM: 0.108, OptimalSpeedKMH: 65, AccelCostL: 0.024, Efficiency: 0.22, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 28, HVACLPH: 1.1, CityL100KM: 14.7, HighwayL100KM: 11.2},
	{Make: "Ford", Model: "F-150", MassKg: 2065, DragCoefficient: 0.41, FrontalAreaM2: 3.32, RollingResistance: 0.013, EngineDisplacement: 3.5, IdleRateLPH: 1, BaseConsumptionLKM: 0.12, OptimalSpeedKMH: 65, AccelCostL: 0.028, Efficiency: 0.21, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 35, HVACLPH: 1.3, CityL100KM: 16.3, HighwayL100KM: 12.4},
	{Make: "Ford", Model: "Mustang", MassKg: 1696, DragCoefficient: 0.35, FrontalAreaM2: 2.32, RollingResistance: 0.011, EngineDisplacement: 5, IdleRateLPH: 0.8, BaseConsumptionLKM: 0.105, OptimalSpeedKMH: 90, AccelCostL: 0.022, Efficiency: 0.22, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 24, HVACLPH: 0.9, CityL100KM: 15.1, HighwayL100KM: 10.7},
	{Make: "Ford", Model: "Explorer", MassKg: 2021, DragCoefficient: 0.38, FrontalAreaM2: 2.92, RollingResistance: 0.013, EngineDisplacement: 2.3, IdleRateLPH: 0.88, BaseConsumptionLKM: 0.105, OptimalSpeedKMH: 70, AccelCostL: 0.022, Efficiency: 0.23, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 26, HVACLPH: 1.1, CityL100KM: 13.8, HighwayL100KM: 10.2},
	{Make: "Ford", Model: "Escape", MassKg: 1607, DragCoefficient: 0.34, FrontalAreaM2: 2.65, RollingResistance: 0.012, EngineDisplacement: 1.5, IdleRateLPH: 0.65, BaseConsumptionLKM: 0.083, OptimalSpeedKMH: 75, AccelCostL: 0.016, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 19, HVACLPH: 0.9, CityL100KM: 11.8, HighwayL100KM: 8.7},
	{Make: "Ford", Model: "Bronco", MassKg: 1975, DragCoefficient: 0.45, FrontalAreaM2: 3.15, RollingResistance: 0.014, EngineDisplacement: 2.3, IdleRateLPH: 0.92, BaseConsumptionLKM: 0.115, OptimalSpeedKMH: 65, AccelCostL: 0.026, Efficiency: 0.21, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 30, HVACLPH: 1.15, CityL100KM: 16.8, HighwayL100KM: 13.1},
	{Make: "BMW", Model: "3 Series", MassKg: 1540, DragCoefficient: 0.26, FrontalAreaM2: 2.22, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.55, BaseConsumptionLKM: 0.072, OptimalSpeedKMH: 85, AccelCostL: 0.013, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 17, HVACLPH: 0.8, CityL100KM: 10.7, HighwayL100KM: 7.1},
	{Make: "BMW", Model: "5 Series", MassKg: 1795, DragCoefficient: 0.25, FrontalAreaM2: 2.31, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.6, BaseConsumptionLKM: 0.082, OptimalSpeedKMH: 85, AccelCostL: 0.015, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 20, HVACLPH: 0.85, CityL100KM: 11.8, HighwayL100KM: 7.8},
	{Make: "BMW", Model: "X5", MassKg: 2175, DragCoefficient: 0.33, FrontalAreaM2: 2.85, RollingResistance: 0.012, EngineDisplacement: 3, IdleRateLPH: 0.95, BaseConsumptionLKM: 0.11, OptimalSpeedKMH: 75, AccelCostL: 0.023, Efficiency: 0.24, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 29, HVACLPH: 1.2, CityL100KM: 14.7, HighwayL100KM: 10.7},
	{Make: "BMW", Model: "X3", MassKg: 1845, DragCoefficient: 0.31, FrontalAreaM2: 2.66, RollingResistance: 0.012, EngineDisplacement: 2, IdleRateLPH: 0.78, BaseConsumptionLKM: 0.092, OptimalSpeedKMH: 75, AccelCostL: 0.019, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 23, HVACLPH: 1.05, CityL100KM: 13.1, HighwayL100KM: 9.4},
	{Make: "Mercedes-Benz", Model: "C-Class", MassKg: 1605, DragCoefficient: 0.24, FrontalAreaM2: 2.21, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.58, BaseConsumptionLKM: 0.075, OptimalSpeedKMH: 85, AccelCostL: 0.013, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 18, HVACLPH: 0.8, CityL100KM: 11.2, HighwayL100KM: 7.5},
	{Make: "Mercedes-Benz", Model: "E-Class", MassKg: 1905, DragCoefficient: 0.23, FrontalAreaM2: 2.28, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.65, BaseConsumptionLKM: 0.088, OptimalSpeedKMH: 85, AccelCostL: 0.016, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 22, HVACLPH: 0.9, CityL100KM: 12.4, HighwayL100KM: 8.1},
	{Make: "Mercedes-Benz", Model: "GLE", MassKg: 2215, DragCoefficient: 0.34, FrontalAreaM2: 2.88, RollingResistance: 0.012, EngineDisplacement: 3, IdleRateLPH: 1, BaseConsumptionLKM: 0.115, OptimalSpeedKMH: 75, AccelCostL: 0.024, Efficiency: 0.23, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 30, HVACLPH: 1.25, CityL100KM: 15.7, HighwayL100KM: 11.2},
	{Make: "Volkswagen", Model: "Golf", MassKg: 1317, DragCoefficient: 0.29, FrontalAreaM2: 2.2, RollingResistance: 0.01, EngineDisplacement: 1.4, IdleRateLPH: 0.45, BaseConsumptionLKM: 0.062, OptimalSpeedKMH: 80, AccelCostL: 0.01, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 13, HVACLPH: 0.65, CityL100KM: 9.4, HighwayL100KM: 6.5},
	{Make: "Volkswagen", Model: "Tiguan", MassKg: 1655, DragCoefficient: 0.33, FrontalAreaM2: 2.66, RollingResistance: 0.012, EngineDisplacement: 2, IdleRateLPH: 0.68, BaseConsumptionLKM: 0.086, OptimalSpeedKMH: 75, AccelCostL: 0.017, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 21, HVACLPH: 1, CityL100KM: 12.4, HighwayL100KM: 9.1},
	{Make: "Volkswagen", Model: "Passat", MassKg: 1492, DragCoefficient: 0.25, FrontalAreaM2: 2.27, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.52, BaseConsumptionLKM: 0.07, OptimalSpeedKMH: 82, AccelCostL: 0.012, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 16, HVACLPH: 0.75, CityL100KM: 10.2, HighwayL100KM: 7.1},
	{Make: "Chevrolet", Model: "Silverado", MassKg: 2136, DragCoefficient: 0.42, FrontalAreaM2: 3.38, RollingResistance: 0.013, EngineDisplacement: 5.3, IdleRateLPH: 1.05, BaseConsumptionLKM: 0.125, OptimalSpeedKMH: 65, AccelCostL: 0.03, Efficiency: 0.21, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 38, HVACLPH: 1.35, CityL100KM: 17.8, HighwayL100KM: 13.1},
	{Make: "Chevrolet", Model: "Equinox", MassKg: 1614, DragCoefficient: 0.33, FrontalAreaM2: 2.66, RollingResistance: 0.012, EngineDisplacement: 1.5, IdleRateLPH: 0.65, BaseConsumptionLKM: 0.083, OptimalSpeedKMH: 75, AccelCostL: 0.016, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 19, HVACLPH: 0.95, CityL100KM: 11.8, HighwayL100KM: 9.1},
	{Make: "Chevrolet", Model: "Tahoe", MassKg: 2518, DragCoefficient: 0.4, FrontalAreaM2: 3.2, RollingResistance: 0.014, EngineDisplacement: 5.3, IdleRateLPH: 1.2, BaseConsumptionLKM: 0.145, OptimalSpeedKMH: 65, AccelCostL: 0.035, Efficiency: 0.2, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 42, HVACLPH: 1.5, CityL100KM: 18.8, HighwayL100KM: 13.8},
	{Make: "Chevrolet", Model: "Malibu", MassKg: 1470, DragCoefficient: 0.29, FrontalAreaM2: 2.22, RollingResistance: 0.01, EngineDisplacement: 1.5, IdleRateLPH: 0.5, BaseConsumptionLKM: 0.068, OptimalSpeedKMH: 80, AccelCostL: 0.011, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 16, HVACLPH: 0.7, CityL100KM: 10.2, HighwayL100KM: 7.1},
	{Make: "Subaru", Model: "Outback", MassKg: 1657, DragCoefficient: 0.33, FrontalAreaM2: 2.6, RollingResistance: 0.011, EngineDisplacement: 2.5, IdleRateLPH: 0.68, BaseConsumptionLKM: 0.087, OptimalSpeedKMH: 75, AccelCostL: 0.017, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 21, HVACLPH: 1, CityL100KM: 12.4, HighwayL100KM: 9.4},
	{Make: "Subaru", Model: "Forester", MassKg: 1590, DragCoefficient: 0.34, FrontalAreaM2: 2.64, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.65, BaseConsumptionLKM: 0.085, OptimalSpeedKMH: 75, AccelCostL: 0.017, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 20, HVACLPH: 0.95, CityL100KM: 12.1, HighwayL100KM: 9.1},
	{Make: "Subaru", Model: "Impreza", MassKg: 1349, DragCoefficient: 0.3, FrontalAreaM2: 2.2, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.48, BaseConsumptionLKM: 0.068, OptimalSpeedKMH: 78, AccelCostL: 0.011, Efficiency: 0.26, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 15, HVACLPH: 0.7, CityL100KM: 10.2, HighwayL100KM: 7.8},
	{Make: "Hyundai", Model: "Elantra", MassKg: 1322, DragCoefficient: 0.27, FrontalAreaM2: 2.18, RollingResistance: 0.01, EngineDisplacement: 2, IdleRateLPH: 0.46, BaseConsumptionLKM: 0.063, OptimalSpeedKMH: 80, AccelCostL: 0.01, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 14, HVACLPH: 0.65, CityL100KM: 9.4, HighwayL100KM: 6.7},
	{Make: "Hyundai", Model: "Tucson", MassKg: 1615, DragCoefficient: 0.33, FrontalAreaM2: 2.65, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.67, BaseConsumptionLKM: 0.085, OptimalSpeedKMH: 75, AccelCostL: 0.017, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 20, HVACLPH: 1, CityL100KM: 12.1, HighwayL100KM: 9.1},
	{Make: "Hyundai", Model: "Sonata", MassKg: 1495, DragCoefficient: 0.25, FrontalAreaM2: 2.23, RollingResistance: 0.01, EngineDisplacement: 2.5, IdleRateLPH: 0.52, BaseConsumptionLKM: 0.07, OptimalSpeedKMH: 82, AccelCostL: 0.012, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 16, HVACLPH: 0.75, CityL100KM: 10.2, HighwayL100KM: 7.1},
	{Make: "Kia", Model: "Sportage", MassKg: 1576, DragCoefficient: 0.33, FrontalAreaM2: 2.64, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.66, BaseConsumptionLKM: 0.084, OptimalSpeedKMH: 75, AccelCostL: 0.016, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 19, HVACLPH: 0.95, CityL100KM: 11.8, HighwayL100KM: 8.7},
	{Make: "Kia", Model: "Sorento", MassKg: 1835, DragCoefficient: 0.34, FrontalAreaM2: 2.78, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.78, BaseConsumptionLKM: 0.095, OptimalSpeedKMH: 72, AccelCostL: 0.02, Efficiency: 0.24, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 24, HVACLPH: 1.1, CityL100KM: 13.1, HighwayL100KM: 9.8},
	{Make: "Kia", Model: "K5", MassKg: 1477, DragCoefficient: 0.27, FrontalAreaM2: 2.2, RollingResistance: 0.01, EngineDisplacement: 2.5, IdleRateLPH: 0.51, BaseConsumptionLKM: 0.07, OptimalSpeedKMH: 82, AccelCostL: 0.012, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 16, HVACLPH: 0.75, CityL100KM: 10.2, HighwayL100KM: 7.1},
	{Make: "Tesla", Model: "Model 3", MassKg: 1611, DragCoefficient: 0.23, FrontalAreaM2: 2.22, RollingResistance: 0.009, EngineDisplacement: 0, IdleRateLPH: 0.02, BaseConsumptionLKM: 0.155, OptimalSpeedKMH: 90, AccelCostL: 0.015, Efficiency: 0.92, FuelType: domain.FuelElectric, Category: domain.CategorySedan, ColdStartML: 0, RegenFraction: 0.7, HVACLPH: 0, CityL100KM: 6.7, HighwayL100KM: 7.4, KWhPer100KM: 14.9},
	{Make: "Tesla", Model: "Model Y", MassKg: 1979, DragCoefficient: 0.23, FrontalAreaM2: 2.66, RollingResistance: 0.009, EngineDisplacement: 0, IdleRateLPH: 0.03, BaseConsumptionLKM: 0.17, OptimalSpeedKMH: 90, AccelCostL: 0.018, Efficiency: 0.92, FuelType: domain.FuelElectric, Category: domain.CategorySUV, ColdStartML: 0, RegenFraction: 0.7, HVACLPH: 0, CityL100KM: 7.4, HighwayL100KM: 8.1, KWhPer100KM: 16.9},
	{Make: "Tesla", Model: "Model S", MassKg: 2162, DragCoefficient: 0.208, FrontalAreaM2: 2.34, RollingResistance: 0.009, EngineDisplacement: 0, IdleRateLPH: 0.03, BaseConsumptionLKM: 0.175, OptimalSpeedKMH: 100, AccelCostL: 0.02, Efficiency: 0.92, FuelType: domain.FuelElectric, Category: domain.CategorySedan, ColdStartML: 0, RegenFraction: 0.72, HVACLPH: 0, CityL100KM: 7.8, HighwayL100KM: 8.5, KWhPer100KM: 18.6},
	{Make: "Nissan", Model: "Altima", MassKg: 1474, DragCoefficient: 0.26, FrontalAreaM2: 2.22, RollingResistance: 0.01, EngineDisplacement: 2.5, IdleRateLPH: 0.5, BaseConsumptionLKM: 0.068, OptimalSpeedKMH: 80, AccelCostL: 0.011, Efficiency: 0.27, FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 16, HVACLPH: 0.75, CityL100KM: 10.2, HighwayL100KM: 7.1},
	{Make: "Nissan", Model: "Rogue", MassKg: 1597, DragCoefficient: 0.33, FrontalAreaM2: 2.66, RollingResistance: 0.012, EngineDisplacement: 2.5, IdleRateLPH: 0.67, BaseConsumptionLKM: 0.086, OptimalSpeedKMH: 75, AccelCostL: 0.017, Efficiency: 0.25, FuelType: domain.FuelGasoline, Category: domain.CategorySUV, ColdStartML: 20, HVACLPH: 0.95, CityL100KM: 12.1, HighwayL100KM: 9.1},
	{Make: "Nissan", Model: "Frontier", MassKg: 1835, DragCoefficient: 0.42, FrontalAreaM2: 3.12, RollingResistance: 0.013, EngineDisplacement: 3.8, IdleRateLPH: 0.9, BaseConsumptionLKM: 0.115, OptimalSpeedKMH: 65, AccelCostL: 0.026, Efficiency: 0.22, FuelType: domain.FuelGasoline, Category: domain.CategoryTruck, ColdStartML: 30, HVACLPH: 1.1, CityL100KM: 15.7, HighwayL100KM: 12.4},
}
