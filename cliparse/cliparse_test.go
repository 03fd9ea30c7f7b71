package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: Config{Port: 3000, DatabaseType: TypeSQLite, DatabaseURL: "giveaway.db"},
		},
		{
			name: "flags win",
			args: []string{"-p", "8080", "-t", "sqlite", "-d", "/data/giveaway.db"},
			want: Config{Port: 8080, DatabaseType: TypeSQLite, DatabaseURL: "/data/giveaway.db"},
		},
		{
			name: "env fallback",
			env: map[string]string{
				"PORT":          "4000",
				"DATABASE_TYPE": "postgres",
				"DATABASE_URL":  "postgres://localhost/giveaway",
				"STATIC_DIR":    "/srv/static",
			},
			want: Config{
				Port:         4000,
				DatabaseType: TypePostgres,
				DatabaseURL:  "postgres://localhost/giveaway",
				StaticDir:    "/srv/static",
			},
		},
		{
			name:    "postgres requires URL",
			args:    []string{"-t", "postgres"},
			wantErr: true,
		},
		{
			name:    "unknown database type",
			args:    []string{"-t", "mongo"},
			wantErr: true,
		},
		{
			name:    "invalid port env",
			env:     map[string]string{"PORT": "not-a-port"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Isolate from the ambient environment
			for _, k := range []string{"PORT", "DATABASE_TYPE", "DATABASE_URL", "STATIC_DIR"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := ParseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlags error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseFlags = %+v, want %+v", got, tt.want)
			}
		})
	}
}
