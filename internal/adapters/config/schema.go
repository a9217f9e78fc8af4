package config

// Configfile represents the structure of the cram.yaml configuration file.
type Configfile struct {
	Version  string      `yaml:"version"`
	Endpoint string      `yaml:"endpoint"`
	Identity IdentityDTO `yaml:"identity"`
	Output   OutputDTO   `yaml:"output"`
	Log      LogDTO      `yaml:"log"`
	Request  RequestDTO  `yaml:"request"`
	Serve    ServeDTO    `yaml:"serve"`
}

// IdentityDTO configures where the signed-in identity is stored.
type IdentityDTO struct {
	CredentialsPath string `yaml:"credentialsPath"`
}

// OutputDTO configures the renderer.
type OutputDTO struct {
	Mode string `yaml:"mode"`
}

// LogDTO configures the logger.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// RequestDTO configures remote calls.
type RequestDTO struct {
	Timeout string `yaml:"timeout"`
}

// ServeDTO configures the development backend.
type ServeDTO struct {
	Listen string `yaml:"listen"`
}

// Quizfile represents a quiz import file.
type Quizfile struct {
	Topic      string        `yaml:"topic"`
	Difficulty string        `yaml:"difficulty"`
	Questions  []QuestionDTO `yaml:"questions"`
}

// QuestionDTO represents one question of a quiz import file.
type QuestionDTO struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correctAnswer"`
	Difficulty    string   `yaml:"difficulty"`
}
