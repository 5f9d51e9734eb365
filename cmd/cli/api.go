/*
 * Copyright 2023 ICON Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icon-project/btp2/common/cli"
	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/icon-project/cwd-sdk/api"
	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/database"
)

func decodeJSON(r io.Reader, v interface{}) error {
	d := json.NewDecoder(r)
	d.UseNumber()
	if err := d.Decode(v); err != nil {
		return err
	}
	if d.More() {
		return errors.New("unexpected data after value")
	}
	return nil
}

// GetStringToInterface returns key=value flags as a map, decoding each value
// as JSON when possible so that numbers and objects keep their types.
func GetStringToInterface(fs *pflag.FlagSet, name string) (map[string]interface{}, error) {
	m, err := fs.GetStringToString(name)
	if err != nil {
		return nil, err
	}
	r := make(map[string]interface{})
	for k, v := range m {
		var jv interface{}
		if err = decodeJSON(strings.NewReader(v), &jv); err != nil {
			r[k] = v
		} else {
			r[k] = jv
		}
	}
	return r, nil
}

func ReadAndUnmarshal(file string, v interface{}) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return decodeJSON(f, v)
}

func ClientPersistentPreRunE(vc *viper.Viper, c *api.Client) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateFlagsWithViper(vc, cmd.Flags()); err != nil {
			return err
		}
		l := log.GlobalLogger()
		if lv, err := log.ParseLevel(vc.GetString("log_level")); err != nil {
			return errors.Wrapf(err, "fail to parseLevel log_level err:%s", err.Error())
		} else {
			l.SetLevel(lv)
		}
		if lv, err := log.ParseLevel(vc.GetString("console_level")); err != nil {
			return errors.Wrapf(err, "fail to parseLevel console_level err:%s", err.Error())
		} else {
			l.SetConsoleLevel(lv)
		}
		dumpLogLevel, err := log.ParseLevel(vc.GetString("dump_log_level"))
		if err != nil {
			return errors.Wrapf(err, "fail to parseLevel dump_log_level err:%s", err.Error())
		} else {
			dumpLogLevel = contract.EnsureTransportLogLevel(dumpLogLevel)
		}
		*c = *api.NewClient(vc.GetString("url"), dumpLogLevel, l)
		return nil
	}
}

func AddAdminRequiredFlags(c *cobra.Command) {
	pFlags := c.PersistentFlags()
	pFlags.String("url", "http://localhost:8080", "server address")
	pFlags.String("log_level", "debug", "Global log level (trace,debug,info,warn,error,fatal,panic)")
	pFlags.String("console_level", "trace", "Console log level (trace,debug,info,warn,error,fatal,panic)")
	pFlags.String("dump_log_level", "trace", "client dump log level (trace,debug,info)")
	pFlags.String("network", "", "network name")
}

func NewApiCommand(parentCmd *cobra.Command, parentVc *viper.Viper) (*cobra.Command, *viper.Viper) {
	rootCmd, rootVc := cli.NewCommand(parentCmd, parentVc, "api", "API cli")
	var (
		c       api.Client
		network string
	)
	persistentPreRunE := ClientPersistentPreRunE(rootVc, &c)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := persistentPreRunE(cmd, args); err != nil {
			return err
		}
		network = rootVc.GetString("network")
		return nil
	}
	AddAdminRequiredFlags(rootCmd)
	cli.MarkAnnotationCustom(rootCmd.PersistentFlags(), "network")
	cli.BindPFlags(rootVc, rootCmd.PersistentFlags())

	ctx := func(cmd *cobra.Command) context.Context {
		if v := cmd.Context(); v != nil {
			return v
		}
		return context.Background()
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "networks",
		Short: "Get list of network information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.NetworkInfos(ctx(cmd))
			if err != nil {
				return err
			}
			return cli.JsonPrettyPrintln(os.Stdout, r)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "services",
		Short: "Get list of service information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.ServiceInfos(ctx(cmd), network)
			if err != nil {
				return err
			}
			return cli.JsonPrettyPrintln(os.Stdout, r)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "result TX_HASH",
		Short: "GetResult",
		Args:  cli.ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			txr, err := c.GetResult(ctx(cmd), network, args[0])
			if err != nil {
				return err
			}
			return cli.JsonPrettyPrintln(os.Stdout, txr)
		},
	})

	docsCmd := &cobra.Command{
		Use:   "docs SERVICE",
		Short: "Get OpenAPI document of service",
		Args:  cli.ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.OpenAPISpec(ctx(cmd), args[0])
			if err != nil {
				return err
			}
			if out := cmd.Flag("out").Value.String(); len(out) > 0 {
				if err = cli.JsonPrettySaveFile(out, 0644, r); err != nil {
					return err
				}
				cmd.Println("Save document to", out)
				return nil
			}
			return cli.JsonPrettyPrintln(os.Stdout, r)
		},
	}
	docsCmd.Flags().String("out", "", "file path to save document")
	rootCmd.AddCommand(docsCmd)

	var svc string
	serviceApiPreRunE := func(cmd *cobra.Command, args []string) error {
		svc = cmd.Flag("service").Value.String()
		if len(svc) == 0 {
			return errors.New("require service")
		}
		return nil
	}
	methodInfosCmd := &cobra.Command{
		Use:     "methods",
		Short:   "Get list of method information",
		Args:    cobra.NoArgs,
		PreRunE: serviceApiPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.MethodInfos(ctx(cmd), network, svc)
			if err != nil {
				return err
			}
			return cli.JsonPrettyPrintln(os.Stdout, r)
		},
	}
	methodInfosCmd.Flags().String("service", "", "service name")
	rootCmd.AddCommand(methodInfosCmd)

	journalCmd := &cobra.Command{
		Use:     "journal",
		Short:   "Get page of transactions sent by service",
		Args:    cobra.NoArgs,
		PreRunE: serviceApiPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			p := database.Pageable{}
			var err error
			if p.Page, err = fs.GetUint("page"); err != nil {
				return err
			}
			if p.Size, err = fs.GetUint("size"); err != nil {
				return err
			}
			if p.Sort, err = fs.GetString("sort"); err != nil {
				return err
			}
			r, err := c.Journal(ctx(cmd), network, svc, p)
			if err != nil {
				return err
			}
			return cli.JsonPrettyPrintln(os.Stdout, r)
		},
	}
	journalFlags := journalCmd.Flags()
	journalFlags.String("service", "", "service name")
	journalFlags.Uint("page", 0, "page number, 0-indexed")
	journalFlags.Uint("size", 20, "page size")
	journalFlags.String("sort", "", "sort, for example 'height desc,id'")
	rootCmd.AddCommand(journalCmd)

	var (
		method string
		req    = &api.Request{}
	)
	newMethodApiCommand := func(use, short string) *cobra.Command {
		cmd := &cobra.Command{
			Use:   fmt.Sprintf("%s METHOD", use),
			Short: short,
			Args:  cli.ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
			PreRunE: func(cmd *cobra.Command, args []string) error {
				if err := serviceApiPreRunE(cmd, args); err != nil {
					return err
				}
				method = args[0]
				var (
					fs  = cmd.Flags()
					err error
				)
				if raw := cmd.Flag("raw").Value.String(); len(raw) > 0 {
					if err = ReadAndUnmarshal(raw, req); err != nil {
						return err
					}
				}
				if fs.Changed("param") {
					if req.Params, err = GetStringToInterface(fs, "param"); err != nil {
						return err
					}
				}
				if fs.Changed("option") {
					if req.Options, err = GetStringToInterface(fs, "option"); err != nil {
						return err
					}
				}
				return nil
			},
		}
		fs := cmd.Flags()
		fs.String("service", "", "service name")
		fs.StringToString("param", nil,
			"key=value, Function parameters, will overwrite 'params' of '--raw'")
		fs.StringToString("option", nil,
			"key=value, Invoke options, will overwrite 'options' of '--raw'")
		fs.String("raw", "", "json file of request which has 'params' and 'options'")
		return cmd
	}

	callCmd := newMethodApiCommand("call", "Call")
	callCmd.RunE = func(cmd *cobra.Command, args []string) error {
		var resp interface{}
		if err := c.Call(ctx(cmd), network, svc, method, req.Params, &resp); err != nil {
			return err
		}
		if err := cli.JsonPrettyPrintln(os.Stdout, resp); err != nil {
			return errors.Errorf("failed JsonIntend resp=%+v, err=%+v", resp, err)
		}
		return nil
	}
	rootCmd.AddCommand(callCmd)

	invokeCmd := newMethodApiCommand("invoke", "Invoke")
	invokeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := c.Invoke(ctx(cmd), network, svc, method, req)
		if err != nil {
			return err
		}
		if err = cli.JsonPrettyPrintln(os.Stdout, r); err != nil {
			return errors.Errorf("failed JsonIntend resp=%+v, err=%+v", r, err)
		}
		return nil
	}
	rootCmd.AddCommand(invokeCmd)
	return rootCmd, rootVc
}
