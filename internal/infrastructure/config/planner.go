package config

// PlannerConfig holds the default speed input per producer kind. Values use the
// same syntax as the CLI speed flags ("max", "blue", "2+20%", "30%").
type PlannerConfig struct {
	AssemblerSpeed  string `mapstructure:"assembler_speed"`
	FurnaceSpeed    string `mapstructure:"furnace_speed"`
	MineSpeed       string `mapstructure:"mine_speed"`
	LabSpeed        string `mapstructure:"lab_speed"`
	ChemSpeed       string `mapstructure:"chem_speed"`
	PumpSpeed       string `mapstructure:"pump_speed"`
	RocketSiloSpeed string `mapstructure:"rocket_silo_speed"`
}
