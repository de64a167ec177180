package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/board"
	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// Fixture is the YAML shape of a seed dataset. Cross-references use
// names, which the loader resolves to generated IDs.
type Fixture struct {
	Ongs           []string         `yaml:"ongs"`
	TiposCobertura []string         `yaml:"tipos_cobertura"`
	Consejos       []string         `yaml:"consejos"`
	Usuarios       []UserFixture    `yaml:"usuarios"`
	Proyectos      []ProjectFixture `yaml:"proyectos"`
	Observaciones  []ObsFixture     `yaml:"observaciones"`
}

// UserFixture describes one seeded user
type UserFixture struct {
	Nombre   string `yaml:"nombre"`
	Apellido string `yaml:"apellido"`
	Edad     int    `yaml:"edad"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Ong      string `yaml:"ong,omitempty"`
	Consejo  string `yaml:"consejo,omitempty"`
}

// ProjectFixture describes one seeded project with its children
type ProjectFixture struct {
	Nombre        string          `yaml:"nombre"`
	Creador       string          `yaml:"creador"`
	Participantes []string        `yaml:"participantes"`
	PlanesTrabajo []string        `yaml:"planes_trabajo"`
	Etapas        []StageFixture  `yaml:"etapas"`
	Pedidos       []PedidoFixture `yaml:"pedidos"`
	Compromisos   []string        `yaml:"compromisos"`
}

// StageFixture describes one seeded stage
type StageFixture struct {
	Nombre   string `yaml:"nombre"`
	Cumplida bool   `yaml:"cumplida"`
}

// PedidoFixture describes one seeded coverage request
type PedidoFixture struct {
	Descripcion string `yaml:"descripcion"`
	Tipo        string `yaml:"tipo"`
}

// ObsFixture describes one seeded observation
type ObsFixture struct {
	Descripcion string `yaml:"descripcion"`
	Proyecto    string `yaml:"proyecto"`
	Consejo     string `yaml:"consejo"`
}

// LoadFile reads and parses a fixture file
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse parses fixture YAML
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Apply loads the fixture into the database inside one transaction.
// Existing rows with colliding unique names fail the load; seeding is
// meant for fresh databases.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ongsByName := make(map[string]*ngo.Ong, len(f.Ongs))
		for _, nombre := range f.Ongs {
			org, err := ngo.NewOng(nombre)
			if err != nil {
				return err
			}
			if err := tx.Create(org).Error; err != nil {
				return err
			}
			ongsByName[nombre] = org
		}

		typesByName := make(map[string]*project.CoverageType, len(f.TiposCobertura))
		for _, nombre := range f.TiposCobertura {
			tipo, err := project.NewCoverageType(nombre)
			if err != nil {
				return err
			}
			if err := tx.Create(tipo).Error; err != nil {
				return err
			}
			typesByName[nombre] = tipo
		}

		boardsByName := make(map[string]*board.Board, len(f.Consejos))
		for _, nombre := range f.Consejos {
			b, err := board.NewBoard(nombre)
			if err != nil {
				return err
			}
			if err := tx.Create(b).Error; err != nil {
				return err
			}
			boardsByName[nombre] = b
		}

		for _, uf := range f.Usuarios {
			user, err := identity.NewUser(uf.Nombre, uf.Apellido, uf.Edad, uf.Email, uf.Password)
			if err != nil {
				return err
			}
			if uf.Ong != "" {
				org, ok := ongsByName[uf.Ong]
				if !ok {
					return fmt.Errorf("user %q references unknown NGO %q", uf.Email, uf.Ong)
				}
				if err := user.AssignOng(org.ID); err != nil {
					return err
				}
			}
			if uf.Consejo != "" {
				b, ok := boardsByName[uf.Consejo]
				if !ok {
					return fmt.Errorf("user %q references unknown board %q", uf.Email, uf.Consejo)
				}
				if err := user.AssignBoard(b.ID); err != nil {
					return err
				}
			}
			if err := tx.Create(user).Error; err != nil {
				return err
			}
		}

		projectsByName := make(map[string]*project.Project, len(f.Proyectos))
		for _, pf := range f.Proyectos {
			creador, ok := ongsByName[pf.Creador]
			if !ok {
				return fmt.Errorf("project %q references unknown creator NGO %q", pf.Nombre, pf.Creador)
			}
			proj, err := project.NewProject(pf.Nombre, creador.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(proj).Error; err != nil {
				return err
			}
			projectsByName[pf.Nombre] = proj

			for _, participante := range pf.Participantes {
				org, ok := ongsByName[participante]
				if !ok {
					return fmt.Errorf("project %q references unknown participant NGO %q", pf.Nombre, participante)
				}
				row := project.Participation{ProjectID: proj.ID, OngID: org.ID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}

			for _, planNombre := range pf.PlanesTrabajo {
				plan := project.WorkPlan{Nombre: planNombre, ProjectID: proj.ID}
				if err := tx.Create(&plan).Error; err != nil {
					return err
				}
			}

			for _, sf := range pf.Etapas {
				stage, err := project.NewStage(sf.Nombre, proj.ID)
				if err != nil {
					return err
				}
				if sf.Cumplida {
					if err := stage.MarkCumplida(); err != nil {
						return err
					}
				}
				if err := tx.Create(stage).Error; err != nil {
					return err
				}
			}

			for _, pdf := range pf.Pedidos {
				tipo, ok := typesByName[pdf.Tipo]
				if !ok {
					return fmt.Errorf("project %q references unknown coverage type %q", pf.Nombre, pdf.Tipo)
				}
				request, err := project.NewCoverageRequest(pdf.Descripcion, proj.ID, tipo.ID)
				if err != nil {
					return err
				}
				if err := tx.Create(request).Error; err != nil {
					return err
				}
			}

			for _, descripcion := range pf.Compromisos {
				commitment, err := project.NewCommitment(descripcion, proj.ID, nil, nil)
				if err != nil {
					return err
				}
				if err := tx.Create(commitment).Error; err != nil {
					return err
				}
			}
		}

		for _, of := range f.Observaciones {
			proj, ok := projectsByName[of.Proyecto]
			if !ok {
				return fmt.Errorf("observation references unknown project %q", of.Proyecto)
			}
			b, ok := boardsByName[of.Consejo]
			if !ok {
				return fmt.Errorf("observation references unknown board %q", of.Consejo)
			}
			obs, err := board.NewObservation(of.Descripcion, proj.ID, b.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(obs).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
