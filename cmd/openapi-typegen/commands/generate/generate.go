// Package generate implements the generate command, which writes TypeScript types for Swagger 2.0
// and OpenAPI 3.0 documents.
package generate

import (
	"context"
	"errors"
	"io"

	"github.com/speakeasy-api/openapi-typegen/cmd/openapi-typegen/commands/cmdutil"
	"github.com/speakeasy-api/openapi-typegen/loader"
	"github.com/speakeasy-api/openapi-typegen/typegen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file...]",
	Short: "Generate TypeScript types from Swagger 2.0 or OpenAPI 3.0 documents",
	Long: `Generate TypeScript type aliases from the schemas of Swagger 2.0 or OpenAPI 3.0 documents.

Every entry of definitions (Swagger 2.0) or components.schemas (OpenAPI 3.0) becomes an
"export type" declaration. The dialect is detected from the shape of the document.

Input options:
- One or more files as arguments
- --url to fetch a document, optionally with basic authentication
- --stdin, "-" or piped data to read from stdin

Output options:
- No output specified: writes to stdout (pipe-friendly)
- --write: writes to the specified file
- --out-dir: writes one .ts file per input`,
	Example: `  openapi-typegen generate petstore.yaml
  openapi-typegen generate --url https://example.com/openapi.json --auth-user me -o types.ts
  cat petstore.json | openapi-typegen generate --skip-empty-types --skip-type-name Error`,
	Run: runGenerate,
}

type flags struct {
	url           string
	authUser      string
	authPassword  string
	stdin         bool
	write         string
	outDir        string
	skipEmpty     bool
	skipTypeNames []string
	excludeQuery  string
	jsonPath      string
	sort          bool
	envFile       string
}

var opts flags

func init() {
	f := generateCmd.Flags()
	f.StringVar(&opts.url, "url", "", "URL of a JSON or YAML document to fetch")
	f.StringVar(&opts.authUser, "auth-user", "", "basic authentication user for --url (env "+EnvAuthUser+")")
	f.StringVar(&opts.authPassword, "auth-password", "", "basic authentication password for --url (env "+EnvAuthPassword+")")
	f.BoolVar(&opts.stdin, "stdin", false, "read the document from stdin")
	f.StringVarP(&opts.write, "write", "o", "", "file to write the generated types to")
	f.StringVar(&opts.outDir, "out-dir", "", "directory to write one file per input to")
	f.BoolVar(&opts.skipEmpty, "skip-empty-types", false, "omit types that have no members")
	f.StringArrayVar(&opts.skipTypeNames, "skip-type-name", nil, "type name to omit, along with every reference to it (repeatable)")
	f.StringVar(&opts.excludeQuery, "exclude-query", "", "JSONPath selecting schemas to omit")
	f.StringVar(&opts.jsonPath, "jsonpath", string(typegen.JSONPathRFC9535), "JSONPath implementation for --exclude-query: rfc9535 or legacy")
	f.BoolVar(&opts.sort, "sort", false, "sort types and their fields by name")
	f.StringVar(&opts.envFile, "env-file", "", "dotenv file to read environment variables from")
}

// Apply registers the generate command on the provided parent command.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	if err := run(cmd.Context(), opts, args, cmd.InOrStdin(), cmdutil.StdinIsPiped()); err != nil {
		cmdutil.Die(err)
	}
}

func run(ctx context.Context, f flags, args []string, stdin io.Reader, piped bool) error {
	processor, sources, err := newProcessor(f, args, stdin, piped)
	if err != nil {
		return err
	}
	return processor.Run(ctx, sources)
}

func newProcessor(f flags, args []string, stdin io.Reader, piped bool) (*Processor, []loader.Source, error) {
	env, err := LoadEnv(f.envFile)
	if err != nil {
		return nil, nil, err
	}

	mode, err := typegen.ParseJSONPathMode(f.jsonPath)
	if err != nil {
		return nil, nil, err
	}

	sources, err := inputSources(f, args, env, piped)
	if err != nil {
		return nil, nil, err
	}

	return &Processor{
		Loader: &loader.Loader{Stdin: stdin},
		Options: typegen.Options{
			SkipEmptyTypes:    f.skipEmpty,
			ExcludedTypeNames: f.skipTypeNames,
			ExcludeQuery:      f.excludeQuery,
			JSONPathMode:      mode,
			Sort:              f.sort,
		},
		OutputFile: f.write,
		OutputDir:  f.outDir,
	}, sources, nil
}

func inputSources(f flags, args []string, env *Env, piped bool) ([]loader.Source, error) {
	sources := []loader.Source{}
	stdin := false

	for _, arg := range args {
		if !cmdutil.IsStdin(arg) {
			sources = append(sources, loader.Source{Path: arg})
			continue
		}
		if stdin {
			return nil, errors.New("stdin can only be read once")
		}
		stdin = true
		sources = append(sources, loader.Source{Stdin: true})
	}

	if f.url != "" {
		user, password := env.Credentials(f.authUser, f.authPassword)
		sources = append(sources, loader.Source{URL: f.url, Username: user, Password: password})
	} else if f.authUser != "" || f.authPassword != "" {
		return nil, errors.New("--auth-user and --auth-password require --url")
	}

	if !stdin && (f.stdin || (len(sources) == 0 && piped)) {
		sources = append(sources, loader.Source{Stdin: true})
	}

	if len(sources) == 0 {
		return nil, errors.New("no input: provide a file, --url or --stdin, or pipe data to stdin")
	}

	return sources, nil
}
